package v1handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"handi/internal/api/handler/v1handler"
	mockv1handler "handi/internal/api/handler/v1handler/mock"
	"handi/internal/engine"
	"handi/internal/ingest"
	"handi/internal/profiles"
	mockprofiles "handi/internal/profiles/mock"
	mocktakes "handi/internal/takes/mock"
	"handi/pkg/domain"
	"handi/pkg/midiout"
	"handi/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/net/websocket"
)

type testAPI struct {
	srv      *httptest.Server
	token    string
	engine   *mockv1handler.MockEngine
	profiles *mockprofiles.MockProfiles
	takes    *mocktakes.MockTakes
	frames   chan domain.Frame
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	priv, pubPEM := genRSAKeys(t)
	sec := newSecHandlerForTest(t, pubPEM)
	now := time.Now()

	ctrl := gomock.NewController(t)
	api := &testAPI{
		token:    signJWTRS256(t, priv, "tester", now, now.Add(time.Hour)),
		engine:   mockv1handler.NewMockEngine(ctrl),
		profiles: mockprofiles.NewMockProfiles(ctrl),
		takes:    mocktakes.NewMockTakes(ctrl),
		frames:   make(chan domain.Frame, 1),
	}

	h := v1handler.New(v1handler.Deps{
		Engine:   api.engine,
		Profiles: api.profiles,
		Takes:    api.takes,
		Ports: func() []midiout.PortInfo {
			return []midiout.PortInfo{{Number: 0, Name: "Python to VCV 1"}}
		},
		Sink: ingest.SinkFunc(func(_ context.Context, f domain.Frame) { api.frames <- f }),
	})

	mux := http.NewServeMux()
	h.Routes(context.Background(), mux, sec)
	api.srv = httptest.NewServer(mux)
	t.Cleanup(api.srv.Close)

	return api
}

func (a *testAPI) do(t *testing.T, method, path, body string) *http.Response {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, a.srv.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+a.token)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })

	return res
}

func decode[T any, P interface {
	*T
	Decode(d *jx.Decoder) error
}](t *testing.T, res *http.Response) T {
	t.Helper()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var v T
	require.NoError(t, P(&v).Decode(jx.DecodeBytes(body)))

	return v
}

// decodeRaw decodes the body without a schema, to check the wire shape.
func decodeRaw(t *testing.T, res *http.Response) map[string]any {
	t.Helper()

	var v map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&v))

	return v
}

func TestRoutes_Unauthorized(t *testing.T) {
	api := newTestAPI(t)

	res, err := http.Get(api.srv.URL + "/v1/status") //nolint: noctx
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	body := decode[v1handler.ErrorBody](t, res)
	require.Equal(t, serrors.ErrUnauthorized.Error(), body.Code)
}

func TestRoutes_Status(t *testing.T) {
	api := newTestAPI(t)

	seen := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	api.engine.EXPECT().Status().Return(engine.Status{
		FPS:             30,
		FramesProcessed: 12,
		Port:            "log",
		Hand:            &engine.HandStatus{Camera: 1, Handedness: domain.HandLeft, Score: 0.8, SeenAt: seen},
	})
	api.takes.EXPECT().Recording().Return(nil)
	api.profiles.EXPECT().Active(gomock.Any()).Return(nil, serrors.With(serrors.ErrNotFound, "no active profile"))

	res := api.do(t, http.MethodGet, "/v1/status", "")
	require.Equal(t, http.StatusOK, res.StatusCode)

	body := decodeRaw(t, res)
	require.InDelta(t, 30.0, body["fps"], 0.001)
	require.Equal(t, "log", body["port"])
	require.Equal(t, map[string]any{
		"camera":     1.0,
		"handedness": "Left",
		"score":      0.8,
		"seenAt":     "2024-05-01T10:00:00Z",
	}, body["hand"])
	require.Nil(t, body["activeProfile"])
	require.Nil(t, body["recording"])
}

func TestRoutes_StopMIDI(t *testing.T) {
	api := newTestAPI(t)

	api.engine.EXPECT().Panic(gomock.Any()).Return(nil)

	res := api.do(t, http.MethodPost, "/v1/midi/stop", "")
	require.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestRoutes_Ports(t *testing.T) {
	api := newTestAPI(t)

	res := api.do(t, http.MethodGet, "/v1/ports", "")
	require.Equal(t, http.StatusOK, res.StatusCode)

	ports := decode[v1handler.PortList](t, res)
	require.Equal(t, "Python to VCV 1", ports[0].Name)
}

func TestRoutes_UpdateTracker(t *testing.T) {
	api := newTestAPI(t)

	current := engine.TrackerSettings{Camera: engine.AnyCamera, MinConfidence: 0.5, Hand: engine.HandAny}
	want := engine.TrackerSettings{Camera: 1, MinConfidence: 0.5, Hand: engine.HandRight}

	gomock.InOrder(
		api.engine.EXPECT().Tracker().Return(current),
		api.engine.EXPECT().SetTracker(want).Return(nil),
		api.engine.EXPECT().Tracker().Return(want),
	)

	res := api.do(t, http.MethodPut, "/v1/tracker", `{"camera":1,"hand":"right"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, v1handler.NewTrackerSettings(want), decode[v1handler.TrackerSettings](t, res))
}

func TestRoutes_UpdateTracker_Invalid(t *testing.T) {
	api := newTestAPI(t)

	res := api.do(t, http.MethodPut, "/v1/tracker", `{"fps":60}`)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	api.engine.EXPECT().Tracker().Return(engine.TrackerSettings{Hand: engine.HandAny})
	api.engine.EXPECT().SetTracker(gomock.Any()).Return(serrors.With(serrors.ErrBadRequest, "min confidence 2 out of [0, 1]"))

	res = api.do(t, http.MethodPut, "/v1/tracker", `{"minConfidence":2}`)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "min confidence 2 out of [0, 1]", decode[v1handler.ErrorBody](t, res).Message)
}

func TestRoutes_CreateProfile(t *testing.T) {
	api := newTestAPI(t)

	api.profiles.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.Profile) (*domain.Profile, error) {
			require.Equal(t, "live", p.Name)
			require.Equal(t, domain.GesturePinch, p.Mappings[0].Gesture)
			p.ID = domain.ProfileID(uuid.New())

			return &p, nil
		},
	)

	res := api.do(t, http.MethodPost, "/v1/profiles",
		`{"name":"live","mappings":[{"gesture":"pinch","active":true,"channel":0,"param":"volume"}]}`)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.Equal(t, "live", decode[v1handler.Profile](t, res).Name)
}

func TestRoutes_ProfileByID(t *testing.T) {
	api := newTestAPI(t)

	res := api.do(t, http.MethodGet, "/v1/profiles/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	id := domain.ProfileID(uuid.New())
	api.profiles.EXPECT().Get(gomock.Any(), id).Return(nil, serrors.With(serrors.ErrNotFound, "profile not found"))

	res = api.do(t, http.MethodGet, "/v1/profiles/"+id.String(), "")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), decode[v1handler.ErrorBody](t, res).Code)
}

func TestRoutes_GetProfile_Shape(t *testing.T) {
	api := newTestAPI(t)

	id := domain.ProfileID(uuid.MustParse("11111111-2222-3333-4444-555555555555"))
	api.profiles.EXPECT().Get(gomock.Any(), id).Return(&domain.Profile{ID: id, Name: "live"}, nil)

	res := api.do(t, http.MethodGet, "/v1/profiles/"+id.String(), "")
	require.Equal(t, http.StatusOK, res.StatusCode)

	body := decodeRaw(t, res)
	require.Equal(t, "11111111-2222-3333-4444-555555555555", body["id"])
	require.Equal(t, []any{}, body["mappings"])
	require.NotContains(t, body, "description")
}

func TestRoutes_GetTake_Shape(t *testing.T) {
	api := newTestAPI(t)

	id := domain.TakeID(uuid.MustParse("11111111-2222-3333-4444-555555555555"))
	profileID := domain.ProfileID(uuid.MustParse("66666666-7777-8888-9999-aaaaaaaaaaaa"))
	started := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	api.takes.EXPECT().Get(gomock.Any(), id).Return(&domain.Take{
		ID:         id,
		ProfileID:  &profileID,
		Status:     domain.TakeStatusRendered,
		EventCount: 3,
		StartedAt:  started,
		StoppedAt:  started.Add(time.Second),
	}, nil)

	res := api.do(t, http.MethodGet, "/v1/takes/"+id.String(), "")
	require.Equal(t, http.StatusOK, res.StatusCode)

	body := decodeRaw(t, res)
	require.Equal(t, id.String(), body["id"])
	require.Equal(t, "66666666-7777-8888-9999-aaaaaaaaaaaa", body["profileId"])
	require.Equal(t, "RENDERED", body["status"])
	require.Equal(t, "2024-05-01T10:00:01Z", body["stoppedAt"])
	require.NotContains(t, body, "lastError")
}

func TestRoutes_CreateProfile_Invalid(t *testing.T) {
	api := newTestAPI(t)

	tests := map[string]string{
		"empty":            ``,
		"missing name":     `{"mappings":[]}`,
		"unknown field":    `{"name":"live","mappings":[],"color":"red"}`,
		"note out of byte": `{"name":"live","mappings":[{"gesture":"fist","active":true,"channel":0,"action":"note","note":300}]}`,
		"trailing data":    `{"name":"live","mappings":[]} {}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			res := api.do(t, http.MethodPost, "/v1/profiles", body)
			require.Equal(t, http.StatusBadRequest, res.StatusCode)
			require.Equal(t, serrors.ErrBadRequest.Error(), decode[v1handler.ErrorBody](t, res).Code)
		})
	}
}

func TestRoutes_UpdateProfile(t *testing.T) {
	api := newTestAPI(t)

	id := domain.ProfileID(uuid.New())
	api.profiles.EXPECT().Update(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, id domain.ProfileID, u profiles.Update) (*domain.Profile, error) {
			require.Equal(t, "renamed", *u.Name)
			require.Nil(t, u.Mappings)

			return &domain.Profile{ID: id, Name: *u.Name}, nil
		},
	)

	res := api.do(t, http.MethodPut, "/v1/profiles/"+id.String(), `{"name":"renamed"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "renamed", decode[v1handler.Profile](t, res).Name)
}

func TestRoutes_ApplyAndDeleteProfile(t *testing.T) {
	api := newTestAPI(t)

	id := domain.ProfileID(uuid.New())
	api.profiles.EXPECT().Apply(gomock.Any(), id).Return(&domain.Profile{ID: id, Name: "live"}, nil)
	api.profiles.EXPECT().Delete(gomock.Any(), id).Return(nil)

	res := api.do(t, http.MethodPost, "/v1/profiles/"+id.String()+"/apply", "")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = api.do(t, http.MethodDelete, "/v1/profiles/"+id.String(), "")
	require.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestRoutes_ListProfiles(t *testing.T) {
	api := newTestAPI(t)

	res := api.do(t, http.MethodGet, "/v1/profiles?limit=0", "")
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	api.profiles.EXPECT().List(gomock.Any(), "c1", uint(5)).Return([]domain.Profile{{Name: "a"}}, "c2", nil)

	res = api.do(t, http.MethodGet, "/v1/profiles?limit=5&cursor=c1", "")
	require.Equal(t, http.StatusOK, res.StatusCode)

	list := decode[v1handler.ProfileList](t, res)
	require.Len(t, list.Items, 1)
	require.Equal(t, v1handler.NewOpt("c2"), list.NextCursor)
}

func TestRoutes_ExportProfiles(t *testing.T) {
	api := newTestAPI(t)

	api.profiles.EXPECT().Export(gomock.Any(), gomock.Any(), "live").DoAndReturn(
		func(_ context.Context, w io.Writer, _ ...string) error {
			_, err := io.WriteString(w, "name: live\n")

			return err
		},
	)

	res := api.do(t, http.MethodGet, "/v1/profiles/export?name=live", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Equal(t, "name: live\n", string(body))
}

func TestRoutes_Takes(t *testing.T) {
	api := newTestAPI(t)

	api.takes.EXPECT().Start(gomock.Any()).Return(nil, serrors.With(serrors.ErrConflict, "another take is recording"))

	res := api.do(t, http.MethodPost, "/v1/takes", "")
	require.Equal(t, http.StatusConflict, res.StatusCode)

	id := domain.TakeID(uuid.New())
	api.takes.EXPECT().Stop(gomock.Any()).Return(&domain.Take{ID: id, Status: domain.TakeStatusPending}, nil)

	res = api.do(t, http.MethodPost, "/v1/takes/current/stop", "")
	require.Equal(t, http.StatusAccepted, res.StatusCode)
	require.Equal(t, string(domain.TakeStatusPending), decode[v1handler.Take](t, res).Status)
}

func TestRoutes_TakeSMF(t *testing.T) {
	api := newTestAPI(t)

	id := domain.TakeID(uuid.New())
	api.takes.EXPECT().SMF(gomock.Any(), id).Return([]byte("MThd"), nil)

	res := api.do(t, http.MethodGet, "/v1/takes/"+id.String()+"/smf", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "audio/midi", res.Header.Get("Content-Type"))
	require.Contains(t, res.Header.Get("Content-Disposition"), id.String())

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Equal(t, "MThd", string(body))
}

func TestRoutes_Stream(t *testing.T) {
	api := newTestAPI(t)

	wsURL := "ws" + strings.TrimPrefix(api.srv.URL, "http") + "/v1/stream?token=" + api.token
	ws, err := websocket.Dial(wsURL, "", "http://localhost/")
	require.NoError(t, err)
	defer ws.Close()

	frame := domain.Frame{Camera: 0, Seq: 7, Width: 640, Height: 480}
	require.NoError(t, websocket.Message.Send(ws, string(ingest.EncodeFrame(frame))))

	select {
	case got := <-api.frames:
		require.Equal(t, uint64(7), got.Seq)
	case <-time.After(2 * time.Second):
		t.Fatal("frame was not submitted")
	}
}
