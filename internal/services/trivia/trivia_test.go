package trivia_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/showhub/showhub-go/internal/config"
	"github.com/showhub/showhub-go/internal/models"
	"github.com/showhub/showhub-go/internal/services/trivia"
	"github.com/showhub/showhub-go/internal/testutil"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.OpenTestDB(t)
	service := trivia.NewService(db, nil, &config.Config{QuestionsPerPage: 10})

	r := gin.New()
	service.SetupRoutes(r)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := map[string]interface{}{}
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
		}
	}
	return w, resp
}

func seedCategories(t *testing.T, db *gorm.DB) []models.Category {
	t.Helper()
	categories := []models.Category{
		{Type: "Science"}, {Type: "Art"}, {Type: "Geography"},
		{Type: "History"}, {Type: "Entertainment"}, {Type: "Sports"},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			t.Fatalf("seed category: %v", err)
		}
	}
	return categories
}

func seedQuestions(t *testing.T, db *gorm.DB, categoryID uint, n int) []models.Question {
	t.Helper()
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{
			Question:   fmt.Sprintf("Question number %d?", i+1),
			Answer:     fmt.Sprintf("Answer %d", i+1),
			CategoryID: categoryID,
			Difficulty: 1 + i%5,
		}
		if err := db.Create(&questions[i]).Error; err != nil {
			t.Fatalf("seed question: %v", err)
		}
	}
	return questions
}

func assertEnvelope(t *testing.T, w *httptest.ResponseRecorder, resp map[string]interface{}, code int, message string) {
	t.Helper()
	if w.Code != code {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, code, w.Body.String())
	}
	if resp["success"] != false {
		t.Errorf("success = %v, want false", resp["success"])
	}
	if resp["error"] != float64(code) {
		t.Errorf("error = %v, want %d", resp["error"], code)
	}
	if resp["message"] != message {
		t.Errorf("message = %v, want %q", resp["message"], message)
	}
}

func TestGetCategories(t *testing.T) {
	r, db := newTestServer(t)

	w, resp := doJSON(t, r, http.MethodGet, "/categories", nil)
	assertEnvelope(t, w, resp, http.StatusNotFound, "resource not found")

	seedCategories(t, db)
	w, resp = doJSON(t, r, http.MethodGet, "/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if resp["success"] != true {
		t.Errorf("success = %v", resp["success"])
	}
	if resp["total_categories"] != float64(6) {
		t.Errorf("total_categories = %v, want 6", resp["total_categories"])
	}
	categories, ok := resp["categories"].(map[string]interface{})
	if !ok {
		t.Fatalf("categories is %T", resp["categories"])
	}
	if categories["1"] != "Science" {
		t.Errorf("categories[1] = %v, want Science", categories["1"])
	}
}

func TestGetQuestionsPagination(t *testing.T) {
	r, db := newTestServer(t)
	seedCategories(t, db)
	seedQuestions(t, db, 1, 12)

	w, resp := doJSON(t, r, http.MethodGet, "/questions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := len(resp["questions"].([]interface{})); got != 10 {
		t.Errorf("page 1 holds %d questions, want 10", got)
	}
	if resp["total_questions"] != float64(12) {
		t.Errorf("total_questions = %v, want 12", resp["total_questions"])
	}
	if cur, ok := resp["current_category"]; !ok || cur != nil {
		t.Errorf("current_category = %v, want null", cur)
	}

	w, resp = doJSON(t, r, http.MethodGet, "/questions?page=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("page 2 status = %d, want 200", w.Code)
	}
	if got := len(resp["questions"].([]interface{})); got != 2 {
		t.Errorf("page 2 holds %d questions, want 2", got)
	}

	w, resp = doJSON(t, r, http.MethodGet, "/questions?page=3", nil)
	assertEnvelope(t, w, resp, http.StatusNotFound, "resource not found")
}

func TestDeleteQuestion(t *testing.T) {
	r, db := newTestServer(t)
	seedCategories(t, db)
	questions := seedQuestions(t, db, 1, 3)

	target := questions[0].ID
	w, resp := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/questions/%d", target), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if resp["deleted_id"] != float64(target) {
		t.Errorf("deleted_id = %v, want %d", resp["deleted_id"], target)
	}
	if resp["total_questions"] != float64(2) {
		t.Errorf("total_questions = %v, want 2", resp["total_questions"])
	}

	// Deleting the same id again is unprocessable, never a success.
	w, resp = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/questions/%d", target), nil)
	assertEnvelope(t, w, resp, http.StatusUnprocessableEntity, "unprocessable")

	w, resp = doJSON(t, r, http.MethodDelete, "/questions/9999", nil)
	assertEnvelope(t, w, resp, http.StatusUnprocessableEntity, "unprocessable")

	w, resp = doJSON(t, r, http.MethodDelete, "/questions/abc", nil)
	assertEnvelope(t, w, resp, http.StatusNotFound, "resource not found")
}

func TestCreateThenSearch(t *testing.T) {
	r, db := newTestServer(t)
	seedCategories(t, db)

	for _, q := range []string{
		"Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?",
		"Which movie's working title was 'The Lunch Date'?",
	} {
		w, resp := doJSON(t, r, http.MethodPost, "/questions", map[string]interface{}{
			"question":   q,
			"answer":     "someone",
			"category":   4,
			"difficulty": 2,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("create status = %d (body %s)", w.Code, w.Body.String())
		}
		if resp["success"] != true {
			t.Errorf("create success = %v", resp["success"])
		}
		if resp["created_id"] == nil {
			t.Error("created_id missing")
		}
	}

	w, resp := doJSON(t, r, http.MethodPost, "/questions", map[string]interface{}{
		"searchTerm": "title",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("search status = %d", w.Code)
	}
	if got := len(resp["questions"].([]interface{})); got != 2 {
		t.Errorf("search returned %d questions, want 2", got)
	}
	if resp["total_questions"] != float64(2) {
		t.Errorf("search total_questions = %v, want 2", resp["total_questions"])
	}

	w, resp = doJSON(t, r, http.MethodPost, "/questions", map[string]interface{}{
		"searchTerm": "no such phrase",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("empty search status = %d, want 200", w.Code)
	}
	if resp["total_questions"] != float64(0) {
		t.Errorf("empty search total_questions = %v, want 0", resp["total_questions"])
	}
}

func TestCreateQuestionValidation(t *testing.T) {
	r, db := newTestServer(t)
	seedCategories(t, db)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing everything", map[string]interface{}{}},
		{"blank question", map[string]interface{}{"question": "  ", "answer": "a", "category": 1, "difficulty": 2}},
		{"unknown category", map[string]interface{}{"question": "q?", "answer": "a", "category": 99, "difficulty": 2}},
		{"difficulty out of range", map[string]interface{}{"question": "q?", "answer": "a", "category": 1, "difficulty": 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := doJSON(t, r, http.MethodPost, "/questions", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
			}
			if resp["success"] != false {
				t.Errorf("success = %v, want false", resp["success"])
			}
			if resp["errors"] == nil {
				t.Error("field errors missing from response")
			}
		})
	}

	var count int64
	db.Model(&models.Question{}).Count(&count)
	if count != 0 {
		t.Errorf("invalid submissions persisted %d rows", count)
	}
}

func TestQuestionsByCategory(t *testing.T) {
	r, db := newTestServer(t)
	seedCategories(t, db)
	seedQuestions(t, db, 2, 3)
	seedQuestions(t, db, 5, 1)

	w, resp := doJSON(t, r, http.MethodGet, "/categories/2/questions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}
	if got := len(resp["questions"].([]interface{})); got != 3 {
		t.Errorf("category 2 returned %d questions, want 3", got)
	}
	if resp["current_category"] != "Art" {
		t.Errorf("current_category = %v, want Art", resp["current_category"])
	}

	w, resp = doJSON(t, r, http.MethodGet, "/categories/99/questions", nil)
	assertEnvelope(t, w, resp, http.StatusNotFound, "resource not found")

	// Known category with no questions: the page is empty.
	w, resp = doJSON(t, r, http.MethodGet, "/categories/3/questions", nil)
	assertEnvelope(t, w, resp, http.StatusNotFound, "resource not found")
}

func TestPlayQuiz(t *testing.T) {
	r, db := newTestServer(t)
	seedCategories(t, db)
	questions := seedQuestions(t, db, 4, 5)

	previous := questions[0].ID
	w, resp := doJSON(t, r, http.MethodPost, "/quizzes", map[string]interface{}{
		"previous_questions": []uint{previous},
		"quiz_category":      map[string]interface{}{"id": 4},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}
	if resp["total_questions"] != float64(4) {
		t.Errorf("total_questions = %v, want 4", resp["total_questions"])
	}
	picked, ok := resp["questions"].(map[string]interface{})
	if !ok {
		t.Fatalf("questions is %T, want an object", resp["questions"])
	}
	if picked["id"] == float64(previous) {
		t.Errorf("picked already-served question %v", picked["id"])
	}
}

func TestPlayQuizExhausted(t *testing.T) {
	r, db := newTestServer(t)
	seedCategories(t, db)
	questions := seedQuestions(t, db, 4, 3)

	previous := make([]uint, len(questions))
	for i, q := range questions {
		previous[i] = q.ID
	}

	w, resp := doJSON(t, r, http.MethodPost, "/quizzes", map[string]interface{}{
		"previous_questions": previous,
		"quiz_category":      map[string]interface{}{"id": 4},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if resp["success"] != true {
		t.Errorf("success = %v, want true", resp["success"])
	}
	if v, ok := resp["questions"]; !ok || v != nil {
		t.Errorf("questions = %v, want null", v)
	}
}

func TestPlayQuizMalformedPayload(t *testing.T) {
	r, db := newTestServer(t)
	seedCategories(t, db)
	seedQuestions(t, db, 1, 2)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing quiz_category", map[string]interface{}{"previous_questions": []uint{}}},
		{"quiz_category without id", map[string]interface{}{"previous_questions": []uint{}, "quiz_category": map[string]interface{}{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := doJSON(t, r, http.MethodPost, "/quizzes", tt.body)
			assertEnvelope(t, w, resp, http.StatusBadRequest, "bad request")
		})
	}

	t.Run("empty body", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPost, "/quizzes", nil)
		assertEnvelope(t, w, resp, http.StatusBadRequest, "bad request")
	})

	t.Run("all categories id zero is valid", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPost, "/quizzes", map[string]interface{}{
			"previous_questions": []uint{},
			"quiz_category":      map[string]interface{}{"id": 0},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
		}
		if resp["questions"] == nil {
			t.Error("expected a question for the all-categories quiz")
		}
	})
}

func TestMethodNotAllowed(t *testing.T) {
	r, db := newTestServer(t)
	seedCategories(t, db)

	w, resp := doJSON(t, r, http.MethodPut, "/questions", map[string]interface{}{})
	assertEnvelope(t, w, resp, http.StatusMethodNotAllowed, "method not allowed")
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newTestServer(t)

	w, resp := doJSON(t, r, http.MethodGet, "/nope", nil)
	assertEnvelope(t, w, resp, http.StatusNotFound, "resource not found")
}
