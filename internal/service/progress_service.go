package service

import (
	"context"
	"encoding/json"
	"math"
	"sort"

	"kidlearn_backend/internal/model"
	"kidlearn_backend/internal/store"
	"kidlearn_backend/internal/util"
)

// Evaluation is the derived completion state for one (user, course) pair.
type Evaluation struct {
	CompletedOrdinals []int `json:"completedOrdinals"`
	ProgressPercent   int   `json:"progressPercent"`
	Completed         bool  `json:"completed"`
	Stars             int   `json:"stars"`
}

// LessonState reports one lesson's unlock/completion status for the UI.
type LessonState struct {
	Ordinal   int  `json:"ordinal"`
	Completed bool `json:"completed"`
	Unlocked  bool `json:"unlocked"`
}

// EnrollmentWriter mirrors evaluation results onto the enrollment row.
type EnrollmentWriter interface {
	Upsert(userID, courseID uint, progress int, completed bool, lessonsCompleted int) error
}

// ActivityRecorder appends to the recent-activity feed.
type ActivityRecorder interface {
	Record(ctx context.Context, entry model.ActivityEntry) error
}

// ProgressService owns the completed-ordinal sets and derives progress,
// completion and star counts from them. The sets live in the key-value
// store under completedLessons_<courseId>_<userEmail>; writes are
// last-write-wins with no cross-device merge.
type ProgressService struct {
	Store       store.Store
	Enrollments EnrollmentWriter
	Activity    ActivityRecorder
}

func NewProgressService(kv store.Store, enrollments EnrollmentWriter, activity ActivityRecorder) *ProgressService {
	return &ProgressService{
		Store:       kv,
		Enrollments: enrollments,
		Activity:    activity,
	}
}

// Evaluate derives the completion state from raw data. Percent is rounded
// half away from zero; a course with no lessons is 0% and never complete.
func Evaluate(totalLessons int, completedOrdinals []int) Evaluation {
	eval := Evaluation{CompletedOrdinals: completedOrdinals}
	if totalLessons <= 0 {
		return eval
	}

	eval.ProgressPercent = int(math.Round(100 * float64(len(completedOrdinals)) / float64(totalLessons)))
	eval.Completed = len(completedOrdinals) == totalLessons
	eval.Stars = eval.ProgressPercent / 25
	return eval
}

// IsUnlocked implements sequential unlocking: lesson 1 is always open,
// lesson i needs i-1 completed. The stored set does not enforce order, so
// a hole like {1,3} leaves lesson 3 locked even though it is recorded as
// complete.
func IsUnlocked(ordinal int, completedOrdinals []int) bool {
	if ordinal == 1 {
		return true
	}
	return containsOrdinal(completedOrdinals, ordinal-1)
}

func (s *ProgressService) GetProgress(ctx context.Context, userEmail string, courseID uint, totalLessons int) (Evaluation, error) {
	ordinals, err := s.loadOrdinals(ctx, userEmail, courseID)
	if err != nil {
		return Evaluation{}, err
	}
	return Evaluate(totalLessons, ordinals), nil
}

// LessonStates expands the evaluation into per-lesson flags for the UI.
func (s *ProgressService) LessonStates(ctx context.Context, userEmail string, courseID uint, totalLessons int) ([]LessonState, error) {
	ordinals, err := s.loadOrdinals(ctx, userEmail, courseID)
	if err != nil {
		return nil, err
	}

	states := make([]LessonState, totalLessons)
	for i := 1; i <= totalLessons; i++ {
		states[i-1] = LessonState{
			Ordinal:   i,
			Completed: containsOrdinal(ordinals, i),
			Unlocked:  IsUnlocked(i, ordinals),
		}
	}
	return states, nil
}

// CompleteLesson records a lesson completion. Marking an already-completed
// ordinal is a no-op: the set stays unchanged and no second activity entry
// is appended. On a first-time completion, exactly one lesson_completed
// entry is recorded and the enrollment row is refreshed.
func (s *ProgressService) CompleteLesson(ctx context.Context, user *model.User, course *model.Course, ordinal int, lessonTitle string) (Evaluation, error) {
	if ordinal < 1 || ordinal > course.Lessons {
		return Evaluation{}, util.Validationf("lesson ordinal %d out of range 1..%d", ordinal, course.Lessons)
	}

	ordinals, err := s.loadOrdinals(ctx, user.Email, course.ID)
	if err != nil {
		return Evaluation{}, err
	}

	if containsOrdinal(ordinals, ordinal) {
		return Evaluate(course.Lessons, ordinals), nil
	}

	ordinals = append(ordinals, ordinal)
	sort.Ints(ordinals)
	if err := s.saveOrdinals(ctx, user.Email, course.ID, ordinals); err != nil {
		return Evaluation{}, err
	}

	eval := Evaluate(course.Lessons, ordinals)

	if err := s.Enrollments.Upsert(user.ID, course.ID, eval.ProgressPercent, eval.Completed, len(ordinals)); err != nil {
		return Evaluation{}, err
	}

	entry := model.ActivityEntry{
		UserEmail:   user.Email,
		UserName:    util.DisplayName(user.Email),
		Role:        user.Role,
		Action:      model.ActionLessonCompleted,
		CourseID:    course.ID,
		LessonID:    ordinal,
		LessonTitle: lessonTitle,
	}
	if err := s.Activity.Record(ctx, entry); err != nil {
		return Evaluation{}, err
	}

	return eval, nil
}

func (s *ProgressService) loadOrdinals(ctx context.Context, userEmail string, courseID uint) ([]int, error) {
	raw, err := s.Store.Get(ctx, store.ProgressKey(courseID, userEmail))
	if err != nil {
		return nil, util.Transportf(err)
	}
	if raw == nil {
		return nil, nil
	}

	var ordinals []int
	if err := json.Unmarshal(raw, &ordinals); err != nil {
		// A corrupt blob is treated as no progress rather than a hard error.
		return nil, nil
	}
	return ordinals, nil
}

func (s *ProgressService) saveOrdinals(ctx context.Context, userEmail string, courseID uint, ordinals []int) error {
	raw, err := json.Marshal(ordinals)
	if err != nil {
		return err
	}
	if err := s.Store.Set(ctx, store.ProgressKey(courseID, userEmail), raw); err != nil {
		return util.Transportf(err)
	}
	return nil
}

func containsOrdinal(ordinals []int, ordinal int) bool {
	for _, o := range ordinals {
		if o == ordinal {
			return true
		}
	}
	return false
}
