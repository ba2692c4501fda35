package goal_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/goals-api/internal/database"
	"github.com/saulo-duarte/goals-api/internal/dbtest"
	"github.com/saulo-duarte/goals-api/internal/goal"
	"github.com/saulo-duarte/goals-api/internal/task"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	db := dbtest.New(t)
	uow := database.NewUnitOfWork(db)

	tasks := task.NewTaskContainer(db, uow)
	goals := goal.NewContainer(db, uow, tasks)

	r := chi.NewRouter()
	r.Mount("/goals", goal.Routes(goals.Handler))
	r.Mount("/tasks", task.Routes(tasks.Handler))
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func createGoal(t *testing.T, h http.Handler, title string) int {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/goals", fmt.Sprintf(`{"title":%q}`, title))
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Goal goal.GoalResponse `json:"goal"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Goal.ID
}

func createTask(t *testing.T, h http.Handler, title string) int {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/tasks", fmt.Sprintf(`{"title":%q}`, title))
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Task task.TaskResponse `json:"task"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Task.ID
}

func goalTasks(t *testing.T, h http.Handler, goalID int) goal.GoalTasksResponse {
	t.Helper()
	rec := do(t, h, http.MethodGet, fmt.Sprintf("/goals/%d/tasks", goalID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body goal.GoalTasksResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func taskIDs(resp goal.GoalTasksResponse) []int {
	ids := make([]int, 0, len(resp.Tasks))
	for _, t := range resp.Tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestGoalCRUD(t *testing.T) {
	h := newTestServer(t)

	t.Run("CreateAndGet", func(t *testing.T) {
		id := createGoal(t, h, "Build a house")

		rec := do(t, h, http.MethodGet, fmt.Sprintf("/goals/%d", id), "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"goal":{"id":%d,"title":"Build a house"}}`, id), rec.Body.String())
	})

	t.Run("CreateWithoutTitle", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/goals", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"details":"Invalid data"}`, rec.Body.String())

		rec = do(t, h, http.MethodGet, "/goals", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var goals []goal.GoalResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &goals))
		assert.Len(t, goals, 1)
	})

	t.Run("GetMissing", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/goals/999999", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"details":"No goal with ID 999999. SORRY."}`, rec.Body.String())
	})

	t.Run("GetInvalidID", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/goals/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"details":"Invalid id abc"}`, rec.Body.String())
	})

	t.Run("Update", func(t *testing.T) {
		rec := do(t, h, http.MethodPut, "/goals/1", `{"title":"Build a cabin"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"goal":{"id":1,"title":"Build a cabin"}}`, rec.Body.String())

		rec = do(t, h, http.MethodPut, "/goals/1", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"details":"Invalid data"}`, rec.Body.String())

		rec = do(t, h, http.MethodPut, "/goals/404", `{"title":"x"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = do(t, h, http.MethodPut, "/goals/x", `{"title":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"details":"Invalid id x"}`, rec.Body.String())
	})

	t.Run("DeleteTwice", func(t *testing.T) {
		rec := do(t, h, http.MethodDelete, "/goals/1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"details":"Goal 1 \"Build a cabin\" successfully deleted"}`, rec.Body.String())

		rec = do(t, h, http.MethodDelete, "/goals/1", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"details":"No goal with ID 1. SORRY."}`, rec.Body.String())
	})
}

func TestListGoals(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/goals", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	titles := []string{"Run", "Swim", "Climb"}
	for _, title := range titles {
		createGoal(t, h, title)
	}

	rec = do(t, h, http.MethodGet, "/goals", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var goals []goal.GoalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &goals))
	require.Len(t, goals, len(titles))
	for i, g := range goals {
		assert.Equal(t, titles[i], g.Title)
	}
}

func TestAssignTasks(t *testing.T) {
	t.Run("ReplaceDropsPreviousTasks", func(t *testing.T) {
		h := newTestServer(t)
		goalID := createGoal(t, h, "Garden")
		t1 := createTask(t, h, "Dig")
		t2 := createTask(t, h, "Plant")
		t3 := createTask(t, h, "Water")

		rec := do(t, h, http.MethodPost, fmt.Sprintf("/goals/%d/tasks", goalID), fmt.Sprintf(`{"task_ids":[%d,%d]}`, t1, t2))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"task_ids":[%d,%d]}`, goalID, t1, t2), rec.Body.String())

		rec = do(t, h, http.MethodPost, fmt.Sprintf("/goals/%d/tasks", goalID), fmt.Sprintf(`{"task_ids":[%d]}`, t3))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"task_ids":[%d]}`, goalID, t3), rec.Body.String())

		assert.Equal(t, []int{t3}, taskIDs(goalTasks(t, h, goalID)))
	})

	t.Run("StringIDs", func(t *testing.T) {
		h := newTestServer(t)
		goalID := createGoal(t, h, "Read")
		t1 := createTask(t, h, "Chapter 1")
		t2 := createTask(t, h, "Chapter 2")

		rec := do(t, h, http.MethodPost, fmt.Sprintf("/goals/%d/tasks", goalID), fmt.Sprintf(`{"task_ids":["%d","%d",%d]}`, t2, t1, t2))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"task_ids":[%d,%d]}`, goalID, t2, t1), rec.Body.String())

		assert.Equal(t, []int{t1, t2}, taskIDs(goalTasks(t, h, goalID)))
	})

	t.Run("IntegralFloatIDs", func(t *testing.T) {
		h := newTestServer(t)
		goalID := createGoal(t, h, "Sleep")
		t1 := createTask(t, h, "Early night")

		rec := do(t, h, http.MethodPost, fmt.Sprintf("/goals/%d/tasks", goalID), fmt.Sprintf(`{"task_ids":[%d.0,%de0]}`, t1, t1))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"task_ids":[%d]}`, goalID, t1), rec.Body.String())

		rec = do(t, h, http.MethodPost, fmt.Sprintf("/goals/%d/tasks", goalID), `{"task_ids":[1.5]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"details":"Invalid id 1.5"}`, rec.Body.String())
	})

	t.Run("EmptyListDetachesAll", func(t *testing.T) {
		h := newTestServer(t)
		goalID := createGoal(t, h, "Cook")
		t1 := createTask(t, h, "Shop")

		do(t, h, http.MethodPost, fmt.Sprintf("/goals/%d/tasks", goalID), fmt.Sprintf(`{"task_ids":[%d]}`, t1))

		rec := do(t, h, http.MethodPost, fmt.Sprintf("/goals/%d/tasks", goalID), `{"task_ids":[]}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"task_ids":[]}`, goalID), rec.Body.String())
		assert.Empty(t, goalTasks(t, h, goalID).Tasks)
	})

	t.Run("InvalidTaskLeavesAssociationUnchanged", func(t *testing.T) {
		h := newTestServer(t)
		goalID := createGoal(t, h, "Travel")
		t1 := createTask(t, h, "Book flight")
		t2 := createTask(t, h, "Pack")

		do(t, h, http.MethodPost, fmt.Sprintf("/goals/%d/tasks", goalID), fmt.Sprintf(`{"task_ids":[%d]}`, t1))

		rec := do(t, h, http.MethodPost, fmt.Sprintf("/goals/%d/tasks", goalID), fmt.Sprintf(`{"task_ids":[%d,"x"]}`, t2))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"details":"Invalid id x"}`, rec.Body.String())

		rec = do(t, h, http.MethodPost, fmt.Sprintf("/goals/%d/tasks", goalID), fmt.Sprintf(`{"task_ids":[%d,555]}`, t2))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"details":"No task with ID 555. SORRY."}`, rec.Body.String())

		assert.Equal(t, []int{t1}, taskIDs(goalTasks(t, h, goalID)))
	})

	t.Run("GoalCheckedBeforeBody", func(t *testing.T) {
		h := newTestServer(t)

		rec := do(t, h, http.MethodPost, "/goals/999999/tasks", `not json`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"details":"No goal with ID 999999. SORRY."}`, rec.Body.String())

		rec = do(t, h, http.MethodPost, "/goals/abc/tasks", `{"task_ids":[1]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"details":"Invalid id abc"}`, rec.Body.String())
	})

	t.Run("MissingTaskIDs", func(t *testing.T) {
		h := newTestServer(t)
		goalID := createGoal(t, h, "Paint")

		rec := do(t, h, http.MethodPost, fmt.Sprintf("/goals/%d/tasks", goalID), `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"details":"Invalid data"}`, rec.Body.String())
	})

	t.Run("PatchKeepsExistingTasks", func(t *testing.T) {
		h := newTestServer(t)
		goalID := createGoal(t, h, "Learn Go")
		t1 := createTask(t, h, "Tour")
		t2 := createTask(t, h, "Effective Go")
		t3 := createTask(t, h, "Write a CLI")

		do(t, h, http.MethodPost, fmt.Sprintf("/goals/%d/tasks", goalID), fmt.Sprintf(`{"task_ids":[%d]}`, t2))

		rec := do(t, h, http.MethodPatch, fmt.Sprintf("/goals/%d/tasks", goalID), fmt.Sprintf(`{"task_ids":[%d,%d,%d]}`, t3, t2, t1))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"task_ids":[%d,%d,%d]}`, goalID, t2, t3, t1), rec.Body.String())

		assert.Equal(t, []int{t1, t2, t3}, taskIDs(goalTasks(t, h, goalID)))
	})

	t.Run("TaskMovesBetweenGoals", func(t *testing.T) {
		h := newTestServer(t)
		first := createGoal(t, h, "First")
		second := createGoal(t, h, "Second")
		t1 := createTask(t, h, "Shared")

		do(t, h, http.MethodPost, fmt.Sprintf("/goals/%d/tasks", first), fmt.Sprintf(`{"task_ids":[%d]}`, t1))
		do(t, h, http.MethodPost, fmt.Sprintf("/goals/%d/tasks", second), fmt.Sprintf(`{"task_ids":[%d]}`, t1))

		assert.Empty(t, goalTasks(t, h, first).Tasks)
		assert.Equal(t, []int{t1}, taskIDs(goalTasks(t, h, second)))
	})
}

func TestGoalTasksProjection(t *testing.T) {
	h := newTestServer(t)
	goalID := createGoal(t, h, "Marathon")

	rec := do(t, h, http.MethodPost, "/tasks", `{"title":"Long run","description":"20km"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	do(t, h, http.MethodPost, fmt.Sprintf("/goals/%d/tasks", goalID), `{"task_ids":[1]}`)

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/goals/%d/tasks", goalID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(
		`{"id":%d,"title":"Marathon","tasks":[{"id":1,"goal_id":%d,"title":"Long run","description":"20km"}]}`,
		goalID, goalID,
	), rec.Body.String())

	rec = do(t, h, http.MethodGet, "/goals/31337/tasks", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteGoalEchoesRawID(t *testing.T) {
	h := newTestServer(t)
	goalID := createGoal(t, h, "Padding")
	require.Equal(t, 1, goalID)

	rec := do(t, h, http.MethodDelete, "/goals/007", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"details":"No goal with ID 7. SORRY."}`, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/goals/001", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"details":"Goal 001 \"Padding\" successfully deleted"}`, rec.Body.String())
}

func TestDeleteGoalKeepsTasks(t *testing.T) {
	h := newTestServer(t)
	goalID := createGoal(t, h, "Move")
	t1 := createTask(t, h, "Boxes")

	do(t, h, http.MethodPost, fmt.Sprintf("/goals/%d/tasks", goalID), fmt.Sprintf(`{"task_ids":[%d]}`, t1))

	rec := do(t, h, http.MethodDelete, fmt.Sprintf("/goals/%d", goalID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/tasks/%d", t1), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"task":{"id":%d,"title":"Boxes","description":null}}`, t1), rec.Body.String())
}
