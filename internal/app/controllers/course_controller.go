package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushq/registrar/internal/app/models/dto"
	"github.com/campushq/registrar/internal/app/services"
)

// CourseController handles the course directory, forms and delete
// confirmation.
type CourseController struct {
	courseService services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController.
func NewCourseController(courseService services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// List renders the course directory, optionally filtered by ?search=.
func (ctrl *CourseController) List(c *gin.Context) {
	search := c.Query("search")

	courses, err := ctrl.courseService.List(c.Request.Context(), search)
	if err != nil {
		ctrl.logger.Error().Err(err).Msg("Failed to list courses")
		redirectWithError(c, "/dashboard/", "Could not load courses.")
		return
	}

	render(c, http.StatusOK, "courses.html", gin.H{
		"Title":   "Courses",
		"Courses": courses,
		"Search":  search,
	})
}

// ShowAdd renders the add-course form.
func (ctrl *CourseController) ShowAdd(c *gin.Context) {
	render(c, http.StatusOK, "course-form.html", gin.H{
		"Title":  "Add Course",
		"Action": "/courses/add/",
	})
}

// Add creates a course from the posted form.
func (ctrl *CourseController) Add(c *gin.Context) {
	var form dto.CourseForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/courses/add/", "All fields are required.")
		return
	}

	_, err := ctrl.courseService.Create(c.Request.Context(), form.Name, form.Code, form.Credits, form.Department)
	if err != nil {
		handleRecordError(c, err, "/courses/add/")
		return
	}

	c.Redirect(http.StatusFound, "/courses/")
}

// ShowEdit renders the edit form for one course.
func (ctrl *CourseController) ShowEdit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c)
		return
	}

	course, err := ctrl.courseService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleRecordError(c, err, "/courses/")
		return
	}

	render(c, http.StatusOK, "course-form.html", gin.H{
		"Title":  "Edit Course",
		"Course": course,
		"Action": c.Request.URL.Path,
	})
}

// Edit overwrites the course fields.
func (ctrl *CourseController) Edit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c)
		return
	}

	var form dto.CourseForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, c.Request.URL.Path, "All fields are required.")
		return
	}

	err := ctrl.courseService.Update(c.Request.Context(), id, form.Name, form.Code, form.Credits, form.Department)
	if err != nil {
		handleRecordError(c, err, c.Request.URL.Path)
		return
	}

	c.Redirect(http.StatusFound, "/courses/")
}

// ShowDelete renders the delete confirmation page, spelling out that the
// enrolled students go with the course.
func (ctrl *CourseController) ShowDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c)
		return
	}

	course, err := ctrl.courseService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleRecordError(c, err, "/courses/")
		return
	}

	render(c, http.StatusOK, "course-delete.html", gin.H{
		"Title":  "Delete Course",
		"Course": course,
	})
}

// Delete performs the cascading delete after an explicit confirmation post.
func (ctrl *CourseController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c)
		return
	}

	if err := ctrl.courseService.Delete(c.Request.Context(), id); err != nil {
		handleRecordError(c, err, "/courses/")
		return
	}

	c.Redirect(http.StatusFound, "/courses/")
}
