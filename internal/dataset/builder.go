// Package dataset builds the hierarchical synthetic dataset the
// benchmark drives through the store: users, courses with their nested
// lesson/quiz/question tree, and the user-course enrollment relation.
package dataset

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rana718/edubench/internal/config"
	"github.com/Rana718/edubench/internal/datagen"
	"github.com/Rana718/edubench/internal/models"
	"github.com/Rana718/edubench/internal/store"
)

var (
	// ErrNoInstructors means courses cannot be built because no user in
	// the pool carries the instructor role.
	ErrNoInstructors = errors.New("no instructors available in user pool")

	// ErrSamplePool means enrollment sampling was asked for more
	// distinct courses than exist.
	ErrSamplePool = errors.New("enrollment sample exceeds course pool")
)

type Builder struct {
	store store.Store
	gen   *datagen.Generator
	ds    config.Dataset
}

func New(st store.Store, gen *datagen.Generator, ds config.Dataset) *Builder {
	return &Builder{store: st, gen: gen, ds: ds}
}

// BuildUsers creates and persists count users, each independently
// assigned the student or instructor role. Every record is put
// individually: the harness deliberately pays one round trip per row.
func (b *Builder) BuildUsers(ctx context.Context, count int) ([]models.User, error) {
	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		user := models.User{
			ID:              b.gen.UUID(),
			Name:            b.gen.Name(),
			Email:           b.gen.Email(),
			Role:            b.gen.Choice(models.Roles),
			EnrolledCourses: []string{},
		}
		if err := b.store.Put(ctx, models.TableUsers, user.Record()); err != nil {
			return nil, fmt.Errorf("failed to insert user %d of %d: %w", i+1, count, err)
		}
		users = append(users, user)
	}
	return users, nil
}

// BuildCoursesWithContent creates count courses, each owned by a random
// instructor from users, and recursively fills in the fixed fan-out of
// lessons, quizzes and questions. Children are persisted before their
// parent so every stored child-id list refers to rows that already
// exist.
func (b *Builder) BuildCoursesWithContent(ctx context.Context, count int, users []models.User) ([]models.Course, error) {
	if count == 0 {
		return []models.Course{}, nil
	}

	var instructors []string
	for _, u := range users {
		if u.Role == models.RoleInstructor {
			instructors = append(instructors, u.ID)
		}
	}
	if len(instructors) == 0 {
		return nil, ErrNoInstructors
	}

	courses := make([]models.Course, 0, count)
	for i := 0; i < count; i++ {
		course := models.Course{
			ID:          b.gen.UUID(),
			Title:       b.gen.CatchPhrase(),
			Description: b.gen.Text(),
			Instructor:  b.gen.Choice(instructors),
			Lessons:     []string{},
			Enrollments: []string{},
		}

		for j := 0; j < b.ds.LessonsPerCourse; j++ {
			lesson, err := b.buildLesson(ctx, course.ID)
			if err != nil {
				return nil, err
			}
			course.Lessons = append(course.Lessons, lesson.ID)
		}

		if err := b.store.Put(ctx, models.TableCourses, course.Record()); err != nil {
			return nil, fmt.Errorf("failed to insert course %d of %d: %w", i+1, count, err)
		}
		courses = append(courses, course)
	}
	return courses, nil
}

func (b *Builder) buildLesson(ctx context.Context, courseID string) (models.Lesson, error) {
	lesson := models.Lesson{
		ID:       b.gen.UUID(),
		CourseID: courseID,
		Title:    b.gen.Sentence(),
		Content:  b.gen.Text(),
		Quizzes:  []string{},
	}

	for i := 0; i < b.ds.QuizzesPerLesson; i++ {
		quiz, err := b.buildQuiz(ctx, lesson.ID)
		if err != nil {
			return models.Lesson{}, err
		}
		lesson.Quizzes = append(lesson.Quizzes, quiz.ID)
	}

	if err := b.store.Put(ctx, models.TableLessons, lesson.Record()); err != nil {
		return models.Lesson{}, fmt.Errorf("failed to insert lesson: %w", err)
	}
	return lesson, nil
}

func (b *Builder) buildQuiz(ctx context.Context, lessonID string) (models.Quiz, error) {
	quiz := models.Quiz{
		ID:        b.gen.UUID(),
		LessonID:  lessonID,
		Title:     b.gen.Sentence(),
		Questions: []string{},
	}

	for i := 0; i < b.ds.QuestionsPerQuiz; i++ {
		question := models.Question{
			ID:            b.gen.UUID(),
			QuizID:        quiz.ID,
			Text:          b.gen.Sentence(),
			Options:       []string{b.gen.Word(), b.gen.Word(), b.gen.Word(), b.gen.Word()},
			CorrectAnswer: b.gen.Word(),
		}
		if err := b.store.Put(ctx, models.TableQuestions, question.Record()); err != nil {
			return models.Quiz{}, fmt.Errorf("failed to insert question: %w", err)
		}
		quiz.Questions = append(quiz.Questions, question.ID)
	}

	if err := b.store.Put(ctx, models.TableQuizzes, quiz.Record()); err != nil {
		return models.Quiz{}, fmt.Errorf("failed to insert quiz: %w", err)
	}
	return quiz, nil
}

// BuildEnrollments links every student to a fixed number of distinct
// courses: the student's enrolledCourses list is set and the user row
// re-persisted, then one enrollment row is written per chosen course.
func (b *Builder) BuildEnrollments(ctx context.Context, users []models.User, courses []models.Course) ([]models.Enrollment, error) {
	hasStudents := false
	for _, u := range users {
		if u.Role == models.RoleStudent {
			hasStudents = true
			break
		}
	}
	if hasStudents && b.ds.CoursesPerStudent > len(courses) {
		return nil, fmt.Errorf("%w: need %d courses, have %d", ErrSamplePool, b.ds.CoursesPerStudent, len(courses))
	}

	enrollments := make([]models.Enrollment, 0)
	for i := range users {
		if users[i].Role != models.RoleStudent {
			continue
		}

		picks, err := b.gen.SampleIndexes(len(courses), b.ds.CoursesPerStudent)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSamplePool, err)
		}

		enrolled := make([]string, 0, len(picks))
		for _, idx := range picks {
			enrolled = append(enrolled, courses[idx].ID)
		}
		users[i].EnrolledCourses = enrolled

		if err := b.store.Put(ctx, models.TableUsers, users[i].Record()); err != nil {
			return nil, fmt.Errorf("failed to update user %s: %w", users[i].ID, err)
		}

		for _, idx := range picks {
			enrollment := models.Enrollment{
				ID:             b.gen.UUID(),
				UserID:         users[i].ID,
				CourseID:       courses[idx].ID,
				EnrollmentDate: b.gen.DateTimeThisYear(),
				Progress:       b.gen.Choice(models.ProgressStates),
			}
			if err := b.store.Put(ctx, models.TableEnrollments, enrollment.Record()); err != nil {
				return nil, fmt.Errorf("failed to insert enrollment: %w", err)
			}
			enrollments = append(enrollments, enrollment)
		}
	}
	return enrollments, nil
}

// RetrieveAll issues a full scan against one table and materializes
// every row.
func (b *Builder) RetrieveAll(ctx context.Context, table string) ([]store.Record, error) {
	records, err := b.store.Query(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve %s: %w", table, err)
	}
	return records, nil
}
