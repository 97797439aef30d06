package web

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"
	"time"

	blobmem "animal-rescue/internal/adapters/blob/memory"
	storemem "animal-rescue/internal/adapters/storage/memory"
	"animal-rescue/internal/domain/reports"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, withImages bool) (*httptest.Server, *reports.Service) {
	t.Helper()

	opts := []reports.Option{}
	if withImages {
		opts = append(opts, reports.WithImageStore(blobmem.NewStore()))
	}
	return newTestServerWith(t, opts...)
}

func newTestServerWith(t *testing.T, opts ...reports.Option) (*httptest.Server, *reports.Service) {
	t.Helper()

	svc := reports.NewService(storemem.NewReportRepo(), opts...)

	pages, err := NewPages(svc, nil)
	require.NoError(t, err)

	r := chi.NewRouter()
	pages.RegisterRoutes(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts, svc
}

func noRedirect() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
}

func TestReportForm_ListsAnimalTypes(t *testing.T) {
	ts, _ := newTestServer(t, false)

	res, err := http.Get(ts.URL + "/report/")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	body, _ := io.ReadAll(res.Body)
	for _, a := range reports.AnimalTypes() {
		assert.Contains(t, string(body), `value="`+string(a)+`"`)
	}
	assert.Contains(t, string(body), `name="image"`)
}

func TestSubmitReport_URLEncoded_RedirectsToList(t *testing.T) {
	ts, svc := newTestServer(t, false)

	form := url.Values{
		"name":        {"Asha"},
		"email":       {"a@x.com"},
		"animal_type": {"Dog"},
		"description": {"limping"},
		"location":    {"Park Rd"},
	}
	res, err := noRedirect().PostForm(ts.URL+"/report/", form)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/reports/", res.Header.Get("Location"))

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, reports.StatusPending, items[0].Status)
	assert.Equal(t, reports.AnimalDog, items[0].AnimalType)
	assert.Empty(t, items[0].ImageKey)
}

func TestSubmitReport_MultipartWithImage_ServedFromMedia(t *testing.T) {
	ts, svc := newTestServer(t, true)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Asha"))
	require.NoError(t, mw.WriteField("animal_type", "Cat"))
	require.NoError(t, mw.WriteField("location", "Main St"))

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="cat.PNG"`)
	h.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, _ = part.Write([]byte("fake-png"))
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/report/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err := noRedirect().Do(req)
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusSeeOther, res.StatusCode)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	key := items[0].ImageKey
	require.True(t, strings.HasPrefix(key, "reports/"))
	require.True(t, strings.HasSuffix(key, ".png"))

	img, err := http.Get(ts.URL + reports.ImageURL(key))
	require.NoError(t, err)
	defer img.Body.Close()

	require.Equal(t, http.StatusOK, img.StatusCode)
	assert.Equal(t, "image/png", img.Header.Get("Content-Type"))
	data, _ := io.ReadAll(img.Body)
	assert.Equal(t, "fake-png", string(data))

	list, err := http.Get(ts.URL + "/reports/")
	require.NoError(t, err)
	defer list.Body.Close()
	page, _ := io.ReadAll(list.Body)
	assert.Contains(t, string(page), "/media/"+key)
}

func TestSubmitReport_MultipartWithoutImage(t *testing.T) {
	ts, svc := newTestServer(t, false)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Asha"))
	require.NoError(t, mw.WriteField("animal_type", "Lizard"))
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/report/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err := noRedirect().Do(req)
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusSeeOther, res.StatusCode)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, reports.AnimalOther, items[0].AnimalType)
}

func TestSubmitReport_OversizedURLEncoded_Rejected(t *testing.T) {
	ts, svc := newTestServer(t, false)

	form := url.Values{
		"name":        {"Asha"},
		"description": {strings.Repeat("x", MaxUploadBytes+10)},
	}
	res, err := noRedirect().PostForm(ts.URL+"/report/", form)
	require.NoError(t, err)
	res.Body.Close()

	assert.Equal(t, http.StatusRequestEntityTooLarge, res.StatusCode)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMedia_OnlyServesReportImages(t *testing.T) {
	images := blobmem.NewStore()
	_, err := images.Put(context.Background(), "backups/db.sql", strings.NewReader("secret"), "text/plain")
	require.NoError(t, err)
	_, err = images.Put(context.Background(), "reports/a.png", strings.NewReader("png"), "image/png")
	require.NoError(t, err)

	ts, _ := newTestServerWith(t, reports.WithImageStore(images))

	res, err := http.Get(ts.URL + "/media/backups/db.sql")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, err = http.Get(ts.URL + "/media/reports/a.png")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestListPages_NewestFirst(t *testing.T) {
	base := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	var calls int
	ts, svc := newTestServerWith(t, reports.WithClock(func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Minute)
	}))
	ctx := context.Background()

	_, err := svc.Create(ctx, reports.CreateInput{Name: "first", AnimalType: "Dog", Location: "Old Rd"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, reports.CreateInput{Name: "second", AnimalType: "Bird", Location: "New Rd"})
	require.NoError(t, err)

	for _, path := range []string{"/", "/reports/"} {
		res, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		body, _ := io.ReadAll(res.Body)
		res.Body.Close()

		require.Equal(t, http.StatusOK, res.StatusCode, path)
		page := string(body)
		require.Contains(t, page, "Old Rd")
		require.Contains(t, page, "New Rd")
		assert.Less(t, strings.Index(page, "New Rd"), strings.Index(page, "Old Rd"), path)
	}
}

func TestListPages_Empty(t *testing.T) {
	ts, _ := newTestServer(t, false)

	res, err := http.Get(ts.URL + "/reports/")
	require.NoError(t, err)
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), "No reports yet.")
}

func TestMedia_NotFound(t *testing.T) {
	for _, withImages := range []bool{true, false} {
		ts, _ := newTestServer(t, withImages)

		res, err := http.Get(ts.URL + "/media/reports/missing.png")
		require.NoError(t, err)
		res.Body.Close()
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	}
}
