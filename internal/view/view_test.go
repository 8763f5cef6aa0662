package view_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-signup-service/internal/client"
	"activity-signup-service/internal/model"
	"activity-signup-service/internal/view"
)

// Фейковые виджеты и API для тестов View.

type fakeAPI struct {
	activities model.ActivityList
	fetchErr   error
	fetchCalls int

	signupMsg   string
	signupErr   error
	signupCalls int

	// signupStarted/signupRelease позволяют подвесить Signup в полёте
	signupStarted chan struct{}
	signupRelease chan struct{}
}

func (f *fakeAPI) FetchActivities(ctx context.Context) (model.ActivityList, error) {
	f.fetchCalls++
	return f.activities, f.fetchErr
}

func (f *fakeAPI) Signup(ctx context.Context, activityName, email string) (string, error) {
	f.signupCalls++
	if f.signupStarted != nil {
		f.signupStarted <- struct{}{}
		<-f.signupRelease
	}
	return f.signupMsg, f.signupErr
}

type fakeList struct {
	cards     []view.Card
	errorText string
	showCalls int
}

func (l *fakeList) ShowCards(cards []view.Card) {
	l.showCalls++
	l.cards = cards
	l.errorText = ""
}

func (l *fakeList) ShowError(text string) {
	l.errorText = text
}

type fakeSelect struct {
	options  []string
	setCalls int
}

func (s *fakeSelect) SetOptions(options []string) {
	s.setCalls++
	s.options = options
}

type fakeMessage struct {
	successText string
	errorText   string
}

func (m *fakeMessage) ShowSuccess(text string) { m.successText = text }
func (m *fakeMessage) ShowError(text string)   { m.errorText = text }

type fakeForm struct {
	email      string
	activity   string
	resetCalls int
}

func (f *fakeForm) Values() (string, string) { return f.email, f.activity }
func (f *fakeForm) Reset() {
	f.resetCalls++
	f.email = ""
	f.activity = ""
}

type fixture struct {
	api     *fakeAPI
	list    *fakeList
	sel     *fakeSelect
	message *fakeMessage
	form    *fakeForm
	view    *view.View
}

func newFixture(api *fakeAPI) *fixture {
	f := &fixture{
		api:     api,
		list:    &fakeList{},
		sel:     &fakeSelect{},
		message: &fakeMessage{},
		form:    &fakeForm{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.view = view.NewView(api, view.Widgets{
		List:    f.list,
		Select:  f.sel,
		Message: f.message,
		Form:    f.form,
	}, logger)
	return f
}

var catalog = model.ActivityList{
	{Name: "Chess Club", Activity: model.Activity{Description: "Chess", Schedule: "Fri", MaxParticipants: 12, Participants: []string{"a@x.edu"}}},
	{Name: "Gym Class", Activity: model.Activity{Description: "Gym", Schedule: "Mon", MaxParticipants: 30, Participants: []string{}}},
}

func TestView_LoadActivities(t *testing.T) {
	f := newFixture(&fakeAPI{activities: catalog})

	f.view.LoadActivities(context.Background())

	require.Len(t, f.list.cards, 2)
	assert.Equal(t, []string{"Chess Club", "Gym Class"}, f.sel.options)

	// повторная загрузка полностью заменяет содержимое, дубликатов нет
	f.view.LoadActivities(context.Background())
	assert.Len(t, f.list.cards, 2)
	assert.Equal(t, []string{"Chess Club", "Gym Class"}, f.sel.options)
	assert.Equal(t, 2, f.sel.setCalls)
}

func TestView_LoadActivities_Failure(t *testing.T) {
	f := newFixture(&fakeAPI{fetchErr: errors.New("connection refused")})

	f.view.LoadActivities(context.Background())

	assert.Equal(t, "Failed to load activities. Please try again later.", f.list.errorText)
	// варианты выбора и область сообщений не трогаются
	assert.Zero(t, f.sel.setCalls)
	assert.Empty(t, f.message.errorText)
	assert.Empty(t, f.message.successText)
}

func TestView_HandleSubmit_NoActivitySelected(t *testing.T) {
	f := newFixture(&fakeAPI{})
	f.form.email = "s@mergington.edu"
	f.form.activity = ""

	f.view.HandleSubmit(context.Background())

	assert.Equal(t, "Please select an activity", f.message.errorText)
	// сетевой запрос не выполняется
	assert.Zero(t, f.api.signupCalls)
}

func TestView_HandleSubmit_Success(t *testing.T) {
	api := &fakeAPI{
		activities: catalog,
		signupMsg:  "Signed up s@mergington.edu for Chess Club",
	}
	f := newFixture(api)
	f.form.email = "s@mergington.edu"
	f.form.activity = "Chess Club"

	f.view.HandleSubmit(context.Background())

	assert.Equal(t, "Signed up s@mergington.edu for Chess Club", f.message.successText)
	// форма очищена, каталог перезагружен ровно один раз
	assert.Equal(t, 1, f.form.resetCalls)
	assert.Equal(t, 1, api.fetchCalls)
}

func TestView_HandleSubmit_FallbackSuccessMessage(t *testing.T) {
	api := &fakeAPI{activities: catalog, signupMsg: ""}
	f := newFixture(api)
	f.form.email = "s@mergington.edu"
	f.form.activity = "Chess Club"

	f.view.HandleSubmit(context.Background())

	assert.Equal(t, "Signed up successfully.", f.message.successText)
	assert.Equal(t, 1, f.form.resetCalls)
}

func TestView_HandleSubmit_ServerDetail(t *testing.T) {
	api := &fakeAPI{
		signupErr: &client.APIError{StatusCode: 400, Detail: "Activity is full"},
	}
	f := newFixture(api)
	f.form.email = "s@mergington.edu"
	f.form.activity = "Chess Club"

	f.view.HandleSubmit(context.Background())

	assert.Equal(t, "Activity is full", f.message.errorText)
	assert.Zero(t, f.form.resetCalls)
	assert.Zero(t, api.fetchCalls)
}

func TestView_HandleSubmit_ServerErrorWithoutDetail(t *testing.T) {
	api := &fakeAPI{
		signupErr: &client.APIError{StatusCode: 502},
	}
	f := newFixture(api)
	f.form.email = "s@mergington.edu"
	f.form.activity = "Chess Club"

	f.view.HandleSubmit(context.Background())

	assert.Equal(t, "Sign up failed", f.message.errorText)
}

func TestView_HandleSubmit_TransportError(t *testing.T) {
	api := &fakeAPI{
		signupErr: errors.New("connection reset"),
	}
	f := newFixture(api)
	f.form.email = "s@mergington.edu"
	f.form.activity = "Chess Club"

	f.view.HandleSubmit(context.Background())

	assert.Equal(t, "An error occurred. Please try again.", f.message.errorText)
	// перезагрузка не запускается
	assert.Zero(t, api.fetchCalls)
}

func TestView_HandleSubmit_DropsOverlappingSubmits(t *testing.T) {
	api := &fakeAPI{
		activities:    catalog,
		signupMsg:     "Signed up s@mergington.edu for Chess Club",
		signupStarted: make(chan struct{}),
		signupRelease: make(chan struct{}),
	}
	f := newFixture(api)
	f.form.email = "s@mergington.edu"
	f.form.activity = "Chess Club"

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.view.HandleSubmit(context.Background())
	}()

	// дожидаемся, пока первый сабмит окажется в полёте
	<-api.signupStarted
	api.signupStarted = nil

	// повторный сабмит при запросе в полёте — no-op
	f.view.HandleSubmit(context.Background())
	assert.Equal(t, 1, api.signupCalls)

	close(api.signupRelease)
	<-done

	assert.Equal(t, 1, api.signupCalls)
	assert.Equal(t, 1, f.form.resetCalls)
}
