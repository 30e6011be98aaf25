package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miraarastudios/miraara-backend/internal/domain"
	"github.com/miraarastudios/miraara-backend/internal/repository"
	"github.com/miraarastudios/miraara-backend/internal/service"
)

type intakeServiceMock struct {
	contacts      []*domain.ContactSubmission
	subscriptions []string
	err           error
}

func (m *intakeServiceMock) SubmitContact(_ context.Context, sub *domain.ContactSubmission) error {
	if m.err != nil {
		return m.err
	}
	m.contacts = append(m.contacts, sub)
	return nil
}

func (m *intakeServiceMock) Subscribe(_ context.Context, email string) error {
	if m.err != nil {
		return m.err
	}
	m.subscriptions = append(m.subscriptions, email)
	return nil
}

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/", bytes.NewReader(payload))
	handler(recorder, request)
	return recorder
}

func TestContact_Success(t *testing.T) {
	mock := &intakeServiceMock{}
	handler := NewIntakeHandler(mock, 5*time.Second)

	recorder := postJSON(t, handler.Contact, map[string]string{
		"name":    "Asha",
		"email":   "asha@example.com",
		"subject": "Commission",
		"message": "Hello",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Message sent successfully", recorder.Body.String())
	require.Len(t, mock.contacts, 1)
	assert.Equal(t, "Commission", mock.contacts[0].Subject)
}

func TestContact_MissingSubject(t *testing.T) {
	mock := &intakeServiceMock{}
	handler := NewIntakeHandler(mock, 5*time.Second)

	recorder := postJSON(t, handler.Contact, map[string]string{
		"name":    "Asha",
		"email":   "asha@example.com",
		"message": "Hello",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Missing required fields", resp.Error)
	assert.Equal(t, "invalid_input", resp.Code)
	assert.Empty(t, mock.contacts, "service must not be called on validation failure")
}

func TestContact_InvalidJSON(t *testing.T) {
	handler := NewIntakeHandler(&intakeServiceMock{}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/", bytes.NewReader([]byte("{not json")))
	handler.Contact(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestContact_StoreError(t *testing.T) {
	mock := &intakeServiceMock{err: fmt.Errorf("save contact: %w", repository.ErrStore)}
	handler := NewIntakeHandler(mock, 5*time.Second)

	recorder := postJSON(t, handler.Contact, map[string]string{
		"name":    "Asha",
		"email":   "asha@example.com",
		"subject": "x",
		"message": "y",
	})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "store_error", resp.Code)
}

func TestSubscribe_Success(t *testing.T) {
	mock := &intakeServiceMock{}
	handler := NewIntakeHandler(mock, 5*time.Second)

	recorder := postJSON(t, handler.Subscribe, map[string]string{"email": "a@b.com"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Subscribed successfully", recorder.Body.String())
	assert.Equal(t, []string{"a@b.com"}, mock.subscriptions)
}

func TestSubscribe_MissingEmail(t *testing.T) {
	mock := &intakeServiceMock{}
	handler := NewIntakeHandler(mock, 5*time.Second)

	recorder := postJSON(t, handler.Subscribe, map[string]string{})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Email required", resp.Error)
	assert.Empty(t, mock.subscriptions)
}

func TestSubscribe_Duplicate(t *testing.T) {
	mock := &intakeServiceMock{err: service.ErrAlreadySubscribed}
	handler := NewIntakeHandler(mock, 5*time.Second)

	recorder := postJSON(t, handler.Subscribe, map[string]string{"email": "a@b.com"})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "already_subscribed", resp.Code)
	assert.Equal(t, "Already subscribed", resp.Error)
}
