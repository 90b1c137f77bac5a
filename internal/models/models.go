package models

import (
	"time"

	"github.com/Rana718/edubench/internal/store"
)

// Table names, in schema creation order. Children reference parents by
// id, so drops and full scans iterate this same fixed order.
const (
	TableUsers       = "Users"
	TableCourses     = "Courses"
	TableLessons     = "Lessons"
	TableQuizzes     = "Quizzes"
	TableQuestions   = "Questions"
	TableEnrollments = "Enrollments"
)

func Tables() []string {
	return []string{TableUsers, TableCourses, TableLessons, TableQuizzes, TableQuestions, TableEnrollments}
}

// UpdateField names the field the update phase appends "_updated" to,
// per table.
func UpdateField(table string) string {
	switch table {
	case TableUsers:
		return "name"
	case TableCourses, TableLessons, TableQuizzes:
		return "title"
	case TableQuestions:
		return "text"
	case TableEnrollments:
		return "progress"
	default:
		return ""
	}
}

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

var Roles = []string{RoleStudent, RoleInstructor}

const (
	ProgressNotStarted = "not started"
	ProgressInProgress = "in progress"
	ProgressCompleted  = "completed"
)

var ProgressStates = []string{ProgressNotStarted, ProgressInProgress, ProgressCompleted}

type User struct {
	ID              string   `json:"id" bson:"id"`
	Name            string   `json:"name" bson:"name"`
	Email           string   `json:"email" bson:"email"`
	Role            string   `json:"role" bson:"role"`
	EnrolledCourses []string `json:"enrolledCourses" bson:"enrolledCourses"`
}

type Course struct {
	ID          string   `json:"id" bson:"id"`
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description" bson:"description"`
	Instructor  string   `json:"instructor" bson:"instructor"`
	Lessons     []string `json:"lessons" bson:"lessons"`
	// Enrollments is declared for schema parity but never populated.
	Enrollments []string `json:"enrollments" bson:"enrollments"`
}

type Lesson struct {
	ID       string   `json:"id" bson:"id"`
	CourseID string   `json:"courseId" bson:"courseId"`
	Title    string   `json:"title" bson:"title"`
	Content  string   `json:"content" bson:"content"`
	Quizzes  []string `json:"quizzes" bson:"quizzes"`
}

type Quiz struct {
	ID        string   `json:"id" bson:"id"`
	LessonID  string   `json:"lessonId" bson:"lessonId"`
	Title     string   `json:"title" bson:"title"`
	Questions []string `json:"questions" bson:"questions"`
}

type Question struct {
	ID            string   `json:"id" bson:"id"`
	QuizID        string   `json:"quizId" bson:"quizId"`
	Text          string   `json:"text" bson:"text"`
	Options       []string `json:"options" bson:"options"`
	CorrectAnswer string   `json:"correctAnswer" bson:"correctAnswer"`
}

type Enrollment struct {
	ID             string    `json:"id" bson:"id"`
	UserID         string    `json:"userId" bson:"userId"`
	CourseID       string    `json:"courseId" bson:"courseId"`
	EnrollmentDate time.Time `json:"enrollmentDate" bson:"enrollmentDate"`
	Progress       string    `json:"progress" bson:"progress"`
}

func (u User) Record() store.Record {
	return store.Record{
		"id":              u.ID,
		"name":            u.Name,
		"email":           u.Email,
		"role":            u.Role,
		"enrolledCourses": u.EnrolledCourses,
	}
}

func (c Course) Record() store.Record {
	return store.Record{
		"id":          c.ID,
		"title":       c.Title,
		"description": c.Description,
		"instructor":  c.Instructor,
		"lessons":     c.Lessons,
		"enrollments": c.Enrollments,
	}
}

func (l Lesson) Record() store.Record {
	return store.Record{
		"id":       l.ID,
		"courseId": l.CourseID,
		"title":    l.Title,
		"content":  l.Content,
		"quizzes":  l.Quizzes,
	}
}

func (q Quiz) Record() store.Record {
	return store.Record{
		"id":        q.ID,
		"lessonId":  q.LessonID,
		"title":     q.Title,
		"questions": q.Questions,
	}
}

func (q Question) Record() store.Record {
	return store.Record{
		"id":            q.ID,
		"quizId":        q.QuizID,
		"text":          q.Text,
		"options":       q.Options,
		"correctAnswer": q.CorrectAnswer,
	}
}

func (e Enrollment) Record() store.Record {
	return store.Record{
		"id":             e.ID,
		"userId":         e.UserID,
		"courseId":       e.CourseID,
		"enrollmentDate": e.EnrollmentDate,
		"progress":       e.Progress,
	}
}

func UserFromRecord(rec store.Record) User {
	return User{
		ID:              asString(rec["id"]),
		Name:            asString(rec["name"]),
		Email:           asString(rec["email"]),
		Role:            asString(rec["role"]),
		EnrolledCourses: asStringSlice(rec["enrolledCourses"]),
	}
}

func CourseFromRecord(rec store.Record) Course {
	return Course{
		ID:          asString(rec["id"]),
		Title:       asString(rec["title"]),
		Description: asString(rec["description"]),
		Instructor:  asString(rec["instructor"]),
		Lessons:     asStringSlice(rec["lessons"]),
		Enrollments: asStringSlice(rec["enrollments"]),
	}
}

func EnrollmentFromRecord(rec store.Record) Enrollment {
	return Enrollment{
		ID:             asString(rec["id"]),
		UserID:         asString(rec["userId"]),
		CourseID:       asString(rec["courseId"]),
		EnrollmentDate: asTime(rec["enrollmentDate"]),
		Progress:       asString(rec["progress"]),
	}
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// asStringSlice tolerates the shapes the adapters hand back: []string
// straight from the memory store, []interface{} from decoded JSON or
// BSON arrays.
func asStringSlice(v interface{}) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []interface{}:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			out = append(out, asString(item))
		}
		return out
	default:
		return nil
	}
}

func asTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return time.Time{}
		}
		return parsed
	default:
		return time.Time{}
	}
}
