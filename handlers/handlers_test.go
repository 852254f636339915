package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"terrasense-service/config"
	"terrasense-service/models"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name  string
		value string

		e             time.Time
		errorExpected bool
	}{
		{
			name:  "RFC3339 timestamp",
			value: "2024-03-15T08:30:00Z",
			e:     time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC),
		}, {
			name:  "Plain date",
			value: "2024-03-15",
			e:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		}, {
			name:          "Garbage",
			value:         "15/03/2024",
			errorExpected: true,
		},
	}

	for _, testCase := range testCases {
		r, err := parseDate(testCase.value)
		if testCase.errorExpected != (err != nil) {
			t.Errorf("%s: expected error: %v, got error: %v", testCase.name, testCase.errorExpected, err)
			continue
		}
		if err == nil && !r.Equal(testCase.e) {
			t.Errorf("%s: got %v, want %v", testCase.name, r, testCase.e)
		}
	}
}

func TestRespondList(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondList(c, []string{"a", "b"}, 2)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	var resp models.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	if !resp.Success {
		t.Error("success is false")
	}
	if resp.Count == nil || *resp.Count != 2 {
		t.Errorf("count %v, want 2", resp.Count)
	}
	if resp.Error != "" {
		t.Errorf("error field %q set on a success envelope", resp.Error)
	}
}

func TestInternalErrorDetailSuppression(t *testing.T) {
	testCases := []struct {
		name string
		env  string
		e    string
	}{
		{
			name: "Development shows detail",
			env:  "development",
			e:    "connection refused",
		}, {
			name: "Production hides detail",
			env:  "production",
			e:    "Internal server error",
		},
	}

	for _, testCase := range testCases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		cfg := &config.Config{Environment: testCase.env}

		internalError(c, cfg, errors.New("connection refused"))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("%s: status %d, want 500", testCase.name, w.Code)
		}
		var resp models.Response
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: bad envelope: %v", testCase.name, err)
		}
		if resp.Success {
			t.Errorf("%s: success is true on an error envelope", testCase.name)
		}
		if resp.Error != testCase.e {
			t.Errorf("%s: error %q, want %q", testCase.name, resp.Error, testCase.e)
		}
	}
}

func TestHealthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HealthCheck(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	var resp models.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Status != "OK" {
		t.Errorf("status field %q, want OK", resp.Status)
	}
}

func TestCreateRejectsUnknownEnumValues(t *testing.T) {
	cfg := &config.Config{Environment: "development"}

	// The services stay nil: validation must reject the payload before any
	// store access.
	router := gin.New()
	router.POST("/api/landdata", NewLandHandler(nil, cfg).CreateLandData)
	router.POST("/api/alerts", NewAlertHandler(nil, nil, nil, cfg).CreateAlert)
	router.POST("/api/users", NewUserHandler(nil, cfg).CreateUser)

	testCases := []struct {
		name string
		path string
		body string

		e string
	}{
		{
			name: "Unknown degradation level",
			path: "/api/landdata",
			body: `{"region": "Nakuru", "degradationLevel": "Severe"}`,
			e:    "Invalid degradation level",
		}, {
			name: "Unknown alert severity",
			path: "/api/alerts",
			body: `{"region": "Narok", "severity": "Extreme"}`,
			e:    "Invalid alert severity",
		}, {
			name: "Unknown alert type",
			path: "/api/alerts",
			body: `{"region": "Narok", "alertType": "Locusts"}`,
			e:    "Invalid alert type",
		}, {
			name: "Unknown alert status",
			path: "/api/alerts",
			body: `{"region": "Narok", "status": "Open"}`,
			e:    "Invalid alert status",
		}, {
			name: "Unknown user role",
			path: "/api/users",
			body: `{"email": "jane@example.com", "role": "farmer"}`,
			e:    "Invalid user role",
		},
	}

	for _, testCase := range testCases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", testCase.path, strings.NewReader(testCase.body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", testCase.name, w.Code)
			continue
		}
		var resp models.Response
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: bad envelope: %v", testCase.name, err)
		}
		if resp.Success || resp.Error != testCase.e {
			t.Errorf("%s: envelope %+v, want error %q", testCase.name, resp, testCase.e)
		}
	}
}

func TestNotFoundRoute(t *testing.T) {
	router := gin.New()
	router.NoRoute(NotFoundRoute)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/no/such/path", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
	var resp models.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	if resp.Success || resp.Error != "Route not found" {
		t.Errorf("envelope %+v", resp)
	}
}
