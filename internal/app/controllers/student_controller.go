package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushq/registrar/internal/app/models/dto"
	"github.com/campushq/registrar/internal/app/services"
)

// StudentController handles the student list, forms and delete confirmation.
type StudentController struct {
	studentService services.StudentService
	courseService  services.CourseService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController.
func NewStudentController(studentService services.StudentService, courseService services.CourseService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		courseService:  courseService,
		logger:         logger,
	}
}

// List renders the student roster, optionally filtered by ?search=.
func (ctrl *StudentController) List(c *gin.Context) {
	search := c.Query("search")

	students, err := ctrl.studentService.List(c.Request.Context(), search)
	if err != nil {
		ctrl.logger.Error().Err(err).Msg("Failed to list students")
		redirectWithError(c, "/dashboard/", "Could not load students.")
		return
	}

	render(c, http.StatusOK, "students.html", gin.H{
		"Title":    "Students",
		"Students": students,
		"Search":   search,
	})
}

// ShowAdd renders the add-student form with the course dropdown.
func (ctrl *StudentController) ShowAdd(c *gin.Context) {
	courses, err := ctrl.courseService.List(c.Request.Context(), "")
	if err != nil {
		ctrl.logger.Error().Err(err).Msg("Failed to load courses for student form")
		redirectWithError(c, "/students/", "Could not load the form.")
		return
	}

	render(c, http.StatusOK, "student-form.html", gin.H{
		"Title":   "Add Student",
		"Courses": courses,
		"Action":  "/students/add/",
	})
}

// Add creates a student from the posted form.
func (ctrl *StudentController) Add(c *gin.Context) {
	var form dto.StudentForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/students/add/", "All fields are required.")
		return
	}

	_, err := ctrl.studentService.Create(c.Request.Context(), form.FullName, form.Email, form.Age, form.CourseID)
	if err != nil {
		handleRecordError(c, err, "/students/add/")
		return
	}

	c.Redirect(http.StatusFound, "/students/")
}

// ShowEdit renders the edit form for one student.
func (ctrl *StudentController) ShowEdit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c)
		return
	}

	student, err := ctrl.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleRecordError(c, err, "/students/")
		return
	}

	courses, err := ctrl.courseService.List(c.Request.Context(), "")
	if err != nil {
		ctrl.logger.Error().Err(err).Msg("Failed to load courses for student form")
		redirectWithError(c, "/students/", "Could not load the form.")
		return
	}

	render(c, http.StatusOK, "student-form.html", gin.H{
		"Title":   "Edit Student",
		"Student": student,
		"Courses": courses,
		"Action":  c.Request.URL.Path,
	})
}

// Edit overwrites the editable student fields. Admission date and status
// are untouched.
func (ctrl *StudentController) Edit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c)
		return
	}

	var form dto.StudentForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, c.Request.URL.Path, "All fields are required.")
		return
	}

	err := ctrl.studentService.Update(c.Request.Context(), id, form.FullName, form.Email, form.Age, form.CourseID)
	if err != nil {
		handleRecordError(c, err, c.Request.URL.Path)
		return
	}

	c.Redirect(http.StatusFound, "/students/")
}

// ShowDelete renders the delete confirmation page without side effects.
func (ctrl *StudentController) ShowDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c)
		return
	}

	student, err := ctrl.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleRecordError(c, err, "/students/")
		return
	}

	render(c, http.StatusOK, "student-delete.html", gin.H{
		"Title":   "Delete Student",
		"Student": student,
	})
}

// Delete performs the delete after an explicit confirmation post.
func (ctrl *StudentController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c)
		return
	}

	if err := ctrl.studentService.Delete(c.Request.Context(), id); err != nil {
		handleRecordError(c, err, "/students/")
		return
	}

	c.Redirect(http.StatusFound, "/students/")
}
