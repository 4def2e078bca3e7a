package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	return body
}

func TestSuccessKeepsEmptyList(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Success(c, []string{})
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Body.String() != `{"success":true,"data":[]}` {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCreatedAndMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Created(c, map[string]string{"id": "1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status want 201 got %d", w.Code)
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Message(c, "Deleted")
	body := decodeBody(t, w)
	if body["message"] != "Deleted" || body["success"] != true {
		t.Fatalf("unexpected body: %v", body)
	}
	if _, ok := body["data"]; ok {
		t.Fatalf("data should be omitted")
	}
}

func TestErrorWithFieldsCannotOverrideEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	ErrorWithFields(c, http.StatusNotFound, "Route not found", gin.H{"path": "/x", "success": true})
	body := decodeBody(t, w)
	if w.Code != http.StatusNotFound || body["success"] != false || body["path"] != "/x" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := WrapError(http.StatusInternalServerError, "failed", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("app error should unwrap to cause")
	}
	if err.Error() != "failed: boom" {
		t.Fatalf("unexpected message %s", err.Error())
	}
}
