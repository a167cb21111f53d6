package service

import (
	"context"
	"testing"

	"kidlearn_backend/internal/model"
	"kidlearn_backend/internal/store"

	"github.com/stretchr/testify/assert"
)

type fakeEnrollments struct {
	progress         int
	completed        bool
	lessonsCompleted int
	upserts          int
}

func (f *fakeEnrollments) Upsert(userID, courseID uint, progress int, completed bool, lessonsCompleted int) error {
	f.progress = progress
	f.completed = completed
	f.lessonsCompleted = lessonsCompleted
	f.upserts++
	return nil
}

type fakeActivity struct {
	entries []model.ActivityEntry
}

func (f *fakeActivity) Record(ctx context.Context, entry model.ActivityEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func newProgressFixture() (*ProgressService, *fakeEnrollments, *fakeActivity) {
	enrollments := &fakeEnrollments{}
	activity := &fakeActivity{}
	svc := NewProgressService(store.NewMemoryStore(), enrollments, activity)
	return svc, enrollments, activity
}

func testUser() *model.User {
	u := &model.User{Name: "Mia", Email: "mia@example.com", Role: model.Student}
	u.ID = 1
	return u
}

func testCourse(lessons int) *model.Course {
	c := &model.Course{Title: "Counting", Lessons: lessons}
	c.ID = 7
	return c
}

func TestEvaluatePercentSequence(t *testing.T) {
	want := []int{20, 40, 60, 80, 100}
	var ordinals []int
	for i := 1; i <= 5; i++ {
		ordinals = append(ordinals, i)
		eval := Evaluate(5, ordinals)
		assert.Equal(t, want[i-1], eval.ProgressPercent)
	}
}

func TestEvaluateRounding(t *testing.T) {
	// 1/3 -> 33.33 rounds to 33, 2/3 -> 66.67 rounds to 67
	assert.Equal(t, 33, Evaluate(3, []int{1}).ProgressPercent)
	assert.Equal(t, 67, Evaluate(3, []int{1, 2}).ProgressPercent)
}

func TestEvaluateCompletionAndStars(t *testing.T) {
	eval := Evaluate(4, []int{1, 2, 3, 4})
	assert.True(t, eval.Completed)
	assert.Equal(t, 100, eval.ProgressPercent)
	assert.Equal(t, 4, eval.Stars)

	partial := Evaluate(4, []int{1, 2})
	assert.False(t, partial.Completed)
	assert.Equal(t, 2, partial.Stars)
}

func TestEvaluateEmptyCourse(t *testing.T) {
	eval := Evaluate(0, nil)
	assert.False(t, eval.Completed)
	assert.Equal(t, 0, eval.ProgressPercent)
	assert.Equal(t, 0, eval.Stars)
}

func TestIsUnlockedSequential(t *testing.T) {
	assert.True(t, IsUnlocked(1, nil))
	assert.False(t, IsUnlocked(2, nil))
	assert.True(t, IsUnlocked(2, []int{1}))
	assert.False(t, IsUnlocked(3, []int{1}))
}

func TestIsUnlockedWithHole(t *testing.T) {
	// {1,3} recorded: lesson 3 is locked because 2 is missing, lesson 4
	// is open because 3 is recorded.
	ordinals := []int{1, 3}
	assert.False(t, IsUnlocked(3, ordinals))
	assert.True(t, IsUnlocked(4, ordinals))
}

func TestCompleteLessonRecordsProgress(t *testing.T) {
	svc, enrollments, activity := newProgressFixture()
	ctx := context.Background()
	user := testUser()
	course := testCourse(5)

	eval, err := svc.CompleteLesson(ctx, user, course, 1, "Numbers 1-10")
	assert.NoError(t, err)
	assert.Equal(t, []int{1}, eval.CompletedOrdinals)
	assert.Equal(t, 20, eval.ProgressPercent)

	assert.Equal(t, 1, enrollments.upserts)
	assert.Equal(t, 20, enrollments.progress)
	assert.Equal(t, 1, enrollments.lessonsCompleted)

	assert.Len(t, activity.entries, 1)
	entry := activity.entries[0]
	assert.Equal(t, model.ActionLessonCompleted, entry.Action)
	assert.Equal(t, "mia", entry.UserName)
	assert.Equal(t, course.ID, entry.CourseID)
	assert.Equal(t, "Numbers 1-10", entry.LessonTitle)
}

func TestCompleteLessonIdempotent(t *testing.T) {
	svc, enrollments, activity := newProgressFixture()
	ctx := context.Background()
	user := testUser()
	course := testCourse(5)

	_, err := svc.CompleteLesson(ctx, user, course, 2, "")
	assert.NoError(t, err)

	eval, err := svc.CompleteLesson(ctx, user, course, 2, "")
	assert.NoError(t, err)
	assert.Equal(t, []int{2}, eval.CompletedOrdinals)

	// The repeat must not write, upsert or log again.
	assert.Equal(t, 1, enrollments.upserts)
	assert.Len(t, activity.entries, 1)
}

func TestCompleteLessonOrdinalOutOfRange(t *testing.T) {
	svc, _, _ := newProgressFixture()
	ctx := context.Background()

	_, err := svc.CompleteLesson(ctx, testUser(), testCourse(5), 0, "")
	assert.Error(t, err)

	_, err = svc.CompleteLesson(ctx, testUser(), testCourse(5), 6, "")
	assert.Error(t, err)
}

func TestCompleteLessonKeepsOrdinalsSorted(t *testing.T) {
	svc, _, _ := newProgressFixture()
	ctx := context.Background()
	user := testUser()
	course := testCourse(5)

	svc.CompleteLesson(ctx, user, course, 3, "")
	svc.CompleteLesson(ctx, user, course, 1, "")
	eval, err := svc.CompleteLesson(ctx, user, course, 2, "")
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, eval.CompletedOrdinals)
}

func TestGetProgressCorruptBlobTreatedAsEmpty(t *testing.T) {
	kv := store.NewMemoryStore()
	svc := NewProgressService(kv, &fakeEnrollments{}, &fakeActivity{})
	ctx := context.Background()

	kv.Set(ctx, store.ProgressKey(7, "mia@example.com"), []byte("not json"))

	eval, err := svc.GetProgress(ctx, "mia@example.com", 7, 5)
	assert.NoError(t, err)
	assert.Equal(t, 0, eval.ProgressPercent)
	assert.Empty(t, eval.CompletedOrdinals)
}

func TestLessonStates(t *testing.T) {
	svc, _, _ := newProgressFixture()
	ctx := context.Background()
	user := testUser()
	course := testCourse(3)

	svc.CompleteLesson(ctx, user, course, 1, "")

	states, err := svc.LessonStates(ctx, user.Email, course.ID, course.Lessons)
	assert.NoError(t, err)
	assert.Len(t, states, 3)

	assert.True(t, states[0].Completed)
	assert.True(t, states[0].Unlocked)
	assert.False(t, states[1].Completed)
	assert.True(t, states[1].Unlocked)
	assert.False(t, states[2].Unlocked)
}
