package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mcaproject/bsc-analyzer/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type controllerMock struct {
	report  model.Report
	reports []model.Report
	status  model.ExplorerStatus
	watched model.WatchedToken
	list    []model.WatchedToken
	ack     model.TelegramAck
	err     error

	gotAnalyze model.FormAnalyze
	gotAddress string
	gotLimit   int
	gotWatch   model.FormAddWatch
	removedID  uint64
}

func (m *controllerMock) Analyze(ctx context.Context, f model.FormAnalyze) (model.Report, error) {
	m.gotAnalyze = f
	return m.report, m.err
}

func (m *controllerMock) Reports(ctx context.Context, limit int) ([]model.Report, error) {
	m.gotLimit = limit
	return m.reports, m.err
}

func (m *controllerMock) ReportByAddress(ctx context.Context, address string) (model.Report, error) {
	m.gotAddress = address
	return m.report, m.err
}

func (m *controllerMock) ExplorerStatus(ctx context.Context, address string) (model.ExplorerStatus, error) {
	m.gotAddress = address
	return m.status, m.err
}

func (m *controllerMock) Watchlist(ctx context.Context) ([]model.WatchedToken, error) {
	return m.list, m.err
}

func (m *controllerMock) AddWatch(ctx context.Context, f model.FormAddWatch) (model.WatchedToken, error) {
	m.gotWatch = f
	return m.watched, m.err
}

func (m *controllerMock) RemoveWatch(ctx context.Context, id uint64) error {
	m.removedID = id
	return m.err
}

func (m *controllerMock) HandleTelegramUpdate(ctx context.Context, u model.TelegramUpdate) (model.TelegramAck, error) {
	return m.ack, m.err
}

func (m *controllerMock) RescanWatchlistJob(ctx context.Context) {}

func (m *controllerMock) PruneReportsJob(ctx context.Context) {}

func serve(m *controllerMock, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	CreateRouter(m).ServeHTTP(w, r)
	return w
}

func TestHealth(t *testing.T) {
	w := serve(&controllerMock{}, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestAnalyze(t *testing.T) {
	m := &controllerMock{report: model.Report{Score: 67.5, Band: model.BandCaution}}
	body := bytes.NewBufferString(`{"chain":"bsc","address":"0x0E09FABB73BD3ADE0A17ECC321FD13A19E81CE82"}`)
	w := serve(m, httptest.NewRequest(http.MethodPost, "/analyze", body))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bsc", m.gotAnalyze.Chain)
	assert.Equal(t, "0x0E09FABB73BD3ADE0A17ECC321FD13A19E81CE82", m.gotAnalyze.Address)
	var res model.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 67.5, res.Score)
}

func TestAnalyzeBadJson(t *testing.T) {
	w := serve(&controllerMock{}, httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString("{")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeBadInput(t *testing.T) {
	m := &controllerMock{err: model.ErrBadInput}
	w := serve(m, httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString(`{"chain":"eth","address":"0x0"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDebugBscScanMissingAddress(t *testing.T) {
	w := serve(&controllerMock{}, httptest.NewRequest(http.MethodGet, "/debug/bscscan", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDebugBscScan(t *testing.T) {
	m := &controllerMock{status: model.ExplorerStatus{KeyPresent: true, ABIStatus: "ok", ABIFunctionCount: 12}}
	w := serve(m, httptest.NewRequest(http.MethodGet, "/debug/bscscan?address=0x0E09FABB73BD3ADE0A17ECC321FD13A19E81CE82", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0x0E09FABB73BD3ADE0A17ECC321FD13A19E81CE82", m.gotAddress)
	var res model.ExplorerStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 12, res.ABIFunctionCount)
}

func TestReportsLimit(t *testing.T) {
	m := &controllerMock{}
	w := serve(m, httptest.NewRequest(http.MethodGet, "/reports?limit=5", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, m.gotLimit)
}

func TestReportsBadLimit(t *testing.T) {
	w := serve(&controllerMock{}, httptest.NewRequest(http.MethodGet, "/reports?limit=many", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportByAddressNotFound(t *testing.T) {
	m := &controllerMock{err: model.ErrNotFound}
	w := serve(m, httptest.NewRequest(http.MethodGet, "/reports/0x0E09FABB73BD3ADE0A17ECC321FD13A19E81CE82", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveWatch(t *testing.T) {
	m := &controllerMock{}
	w := serve(m, httptest.NewRequest(http.MethodDelete, "/watchlist/12", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint64(12), m.removedID)
}

func TestRemoveWatchBadID(t *testing.T) {
	w := serve(&controllerMock{}, httptest.NewRequest(http.MethodDelete, "/watchlist/twelve", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTelegramWebhook(t *testing.T) {
	m := &controllerMock{ack: model.TelegramAck{OK: true}}
	body := bytes.NewBufferString(`{"update_id":1,"message":{"text":"/start","chat":{"id":42}}}`)
	w := serve(m, httptest.NewRequest(http.MethodPost, "/tg", body))
	require.Equal(t, http.StatusOK, w.Code)
	var ack model.TelegramAck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
	assert.True(t, ack.OK)
}
