package http

import (
	"fmt"
	stdhttp "net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"tender-crm-backend/internal/adapter/middleware"
	"tender-crm-backend/internal/adapter/repository/mysql"
	"tender-crm-backend/internal/domain/catalog"
	"tender-crm-backend/internal/domain/client"
	"tender-crm-backend/internal/domain/financial"
	"tender-crm-backend/internal/domain/tender"
	"tender-crm-backend/internal/domain/user"
	ucCatalog "tender-crm-backend/internal/usecase/catalog"
	ucClient "tender-crm-backend/internal/usecase/client"
	ucFinancial "tender-crm-backend/internal/usecase/financial"
	ucTender "tender-crm-backend/internal/usecase/tender"
	ucUser "tender-crm-backend/internal/usecase/user"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func catalogHandler[T any, P catalog.Item[T]](db *gorm.DB) *CatalogHandler[T, P] {
	svc := ucCatalog.NewService[T, P](mysql.NewCatalogRepository[T](db), nil)
	return NewCatalogHandler(svc, zap.NewNop())
}

// newServer wires the full stack over in-memory sqlite and miniredis.
func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.AutoMigrate(&financial.Request{}, &tender.Tender{}, &client.Client{}, &user.User{},
		&catalog.OEM{}, &catalog.Product{}, &catalog.Department{}, &catalog.Designation{}, &catalog.BidTemplate{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	log := zap.NewNop()
	tx := mysql.NewGormUoW(db)
	h := Handlers{
		Health:       NewHandler(),
		Financial:    NewFinancialHandler(ucFinancial.NewUsecase(mysql.NewFinancialRepository(db), tx, log), log),
		Tender:       NewTenderHandler(ucTender.NewUsecase(mysql.NewTenderRepository(db), tx, log), log),
		Client:       NewClientHandler(ucClient.NewUsecase(mysql.NewClientRepository(db), tx, log), log),
		User:         NewUserHandler(ucUser.NewUsecase(mysql.NewUserRepository(db), log), log),
		OEMs:         catalogHandler[catalog.OEM](db),
		Products:     catalogHandler[catalog.Product](db),
		Departments:  catalogHandler[catalog.Department](db),
		Designations: catalogHandler[catalog.Designation](db),
		BidTemplates: catalogHandler[catalog.BidTemplate](db),
	}
	e := newEchoWithValidator()
	Register(e, h, middleware.RequireActor(), middleware.IdempotencyMiddleware(rdb, time.Minute, log))
	return e
}

var reqSeq int

func send(t *testing.T, e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *stdhttp.Request
	if body != nil {
		req = httptest.NewRequest(method, path, mustJSON(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(middleware.HeaderUserID, "usr-fin")
	req.Header.Set(middleware.HeaderUserName, "Fin Ops")
	reqSeq++
	req.Header.Set(middleware.HeaderRequestID, fmt.Sprintf("%032x", reqSeq))
	req.Header.Set(middleware.HeaderRequestAt, strconv.FormatInt(time.Now().Unix(), 10))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func expect(t *testing.T, rec *httptest.ResponseRecorder, code int) {
	t.Helper()
	if rec.Code != code {
		t.Fatalf("status = %d, want %d (body=%s)", rec.Code, code, rec.Body.String())
	}
}

func TestRouter_EMDLifecycleEndToEnd(t *testing.T) {
	e := newServer(t)

	rec := send(t, e, stdhttp.MethodPost, "/tenders", map[string]any{"referenceNo": "RFP-9", "title": "Data centre", "value": 250000})
	expect(t, rec, stdhttp.StatusCreated)
	tn := decode[tender.Tender](t, rec.Body.Bytes())

	rec = send(t, e, stdhttp.MethodPost, "/financial-requests", map[string]any{"tenderId": tn.TenderID, "type": "EMD", "amount": 50000})
	expect(t, rec, stdhttp.StatusCreated)
	fr := decode[financial.Request](t, rec.Body.Bytes())

	rec = send(t, e, stdhttp.MethodPut, "/financial-requests/"+fr.RequestID, map[string]any{"status": "Approved"})
	expect(t, rec, stdhttp.StatusOK)
	approved := decode[financial.Request](t, rec.Body.Bytes())
	if approved.ApproverID == nil || *approved.ApproverID != "usr-fin" || approved.ApprovalDate == nil {
		t.Fatalf("approval not stamped: %+v", approved)
	}

	rec = send(t, e, stdhttp.MethodPut, "/financial-requests/"+fr.RequestID, map[string]any{
		"status": "Processed", "instrument": map[string]any{"mode": "Online", "processedDate": "2024-01-01"},
	})
	expect(t, rec, stdhttp.StatusOK)

	rec = send(t, e, stdhttp.MethodGet, "/tenders/"+tn.TenderID, nil)
	expect(t, rec, stdhttp.StatusOK)
	got := decode[tender.Tender](t, rec.Body.Bytes())
	want := tender.FinancialRecord{Amount: 50000, Mode: "Online", ProcessedDate: "2024-01-01", RefundStatus: "Pending"}
	if got.EMD != want {
		t.Fatalf("emd = %+v, want %+v", got.EMD, want)
	}
	if got.History.Len() != 1 {
		t.Fatalf("history = %+v", got.History)
	}
}

func TestRouter_TenderWorkflow(t *testing.T) {
	e := newServer(t)
	rec := send(t, e, stdhttp.MethodPost, "/tenders", map[string]any{"referenceNo": "RFP-1", "title": "Fibre"})
	expect(t, rec, stdhttp.StatusCreated)
	id := decode[tender.Tender](t, rec.Body.Bytes()).TenderID

	expect(t, send(t, e, stdhttp.MethodPost, "/tenders", map[string]any{"referenceNo": "RFP-1", "title": "Dup"}), stdhttp.StatusConflict)
	expect(t, send(t, e, stdhttp.MethodPost, "/tenders/"+id+"/assign", map[string]any{"userIds": []string{"usr-fin"}}), stdhttp.StatusOK)
	expect(t, send(t, e, stdhttp.MethodPut, "/tenders/"+id+"/assignment-response", map[string]any{"response": "Accepted"}), stdhttp.StatusOK)
	expect(t, send(t, e, stdhttp.MethodPut, "/tenders/"+id+"/post-award/installation", map[string]any{"status": "In Progress"}), stdhttp.StatusOK)
	expect(t, send(t, e, stdhttp.MethodPost, "/tenders/"+id+"/history", map[string]any{"action": "Site visit"}), stdhttp.StatusCreated)

	rec = send(t, e, stdhttp.MethodGet, "/tenders/"+id, nil)
	expect(t, rec, stdhttp.StatusOK)
	got := decode[tender.Tender](t, rec.Body.Bytes())
	actions := make([]string, 0, got.History.Len())
	for _, h := range got.History {
		actions = append(actions, h.Action)
	}
	wantActions := []string{"Tender created", "Users assigned", "Assignment accepted", "Post-award stage updated", "Site visit"}
	if fmt.Sprint(actions) != fmt.Sprint(wantActions) {
		t.Fatalf("history = %v, want %v", actions, wantActions)
	}
	if r, ok := got.AssignmentResponses.Get("usr-fin"); !ok || r.Response != "Accepted" {
		t.Fatalf("assignment response = %+v", got.AssignmentResponses)
	}

	expect(t, send(t, e, stdhttp.MethodDelete, "/tenders/"+id, nil), stdhttp.StatusNoContent)
	expect(t, send(t, e, stdhttp.MethodGet, "/tenders/"+id, nil), stdhttp.StatusNotFound)
}

func TestRouter_ClientsUsersAndCatalog(t *testing.T) {
	e := newServer(t)

	rec := send(t, e, stdhttp.MethodPost, "/clients", map[string]any{"name": "Acme", "email": "ops@acme.test"})
	expect(t, rec, stdhttp.StatusCreated)
	cl := decode[client.Client](t, rec.Body.Bytes())
	if cl.Status != client.StatusProspect || cl.History.Len() != 1 {
		t.Fatalf("client = %+v", cl)
	}
	expect(t, send(t, e, stdhttp.MethodPost, "/clients/"+cl.ClientID+"/history", map[string]any{"action": "Call"}), stdhttp.StatusCreated)

	expect(t, send(t, e, stdhttp.MethodPost, "/users", map[string]any{
		"username": "asha", "fullName": "Asha K", "email": "asha@example.com", "role": "Sales",
	}), stdhttp.StatusCreated)
	expect(t, send(t, e, stdhttp.MethodPost, "/users", map[string]any{
		"username": "asha", "fullName": "Other", "email": "other@example.com", "role": "Sales",
	}), stdhttp.StatusConflict)

	for _, path := range []string{"/admin/departments", "/admin/designations", "/admin/bid-templates", "/oems", "/products"} {
		rec := send(t, e, stdhttp.MethodPost, path, map[string]any{"name": "First"})
		expect(t, rec, stdhttp.StatusCreated)
		id := decode[catalog.Record](t, rec.Body.Bytes()).PublicID

		expect(t, send(t, e, stdhttp.MethodPut, path+"/"+id, map[string]any{"name": "Renamed"}), stdhttp.StatusOK)
		rec = send(t, e, stdhttp.MethodGet, path, nil)
		expect(t, rec, stdhttp.StatusOK)
		list := decode[[]catalog.Record](t, rec.Body.Bytes())
		if len(list) != 1 || list[0].Name != "Renamed" {
			t.Fatalf("%s list = %+v", path, list)
		}
		expect(t, send(t, e, stdhttp.MethodDelete, path+"/"+id, nil), stdhttp.StatusNoContent)
	}
	expect(t, send(t, e, stdhttp.MethodPost, "/admin/departments", map[string]any{}), stdhttp.StatusUnprocessableEntity)
}

func TestRouter_UserActiveFlagPersists(t *testing.T) {
	e := newServer(t)

	tests := []struct {
		name   string
		active any
		want   bool
	}{
		{"explicit false", false, false},
		{"explicit true", true, true},
		{"omitted defaults to true", nil, true},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := map[string]any{
				"username": fmt.Sprintf("user%d", i), "fullName": "Test User",
				"email": fmt.Sprintf("user%d@example.com", i), "role": "Finance",
			}
			if tt.active != nil {
				body["active"] = tt.active
			}
			rec := send(t, e, stdhttp.MethodPost, "/users", body)
			expect(t, rec, stdhttp.StatusCreated)
			created := decode[user.User](t, rec.Body.Bytes())
			if created.Active != tt.want {
				t.Fatalf("create response active = %v, want %v", created.Active, tt.want)
			}

			rec = send(t, e, stdhttp.MethodGet, "/users/"+created.UserID, nil)
			expect(t, rec, stdhttp.StatusOK)
			if got := decode[user.User](t, rec.Body.Bytes()); got.Active != tt.want {
				t.Fatalf("stored active = %v, want %v", got.Active, tt.want)
			}
		})
	}
}

func TestRouter_MutationsNeedActorAndReplay(t *testing.T) {
	e := newServer(t)

	req := httptest.NewRequest(stdhttp.MethodPost, "/tenders", mustJSON(map[string]any{"referenceNo": "R", "title": "T"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	expect(t, rec, stdhttp.StatusUnauthorized)

	// a retried create with the same request id replays instead of inserting twice
	body := map[string]any{"tenderId": "ten-x", "type": "SD", "amount": 10}
	mk := func() *stdhttp.Request {
		r := httptest.NewRequest(stdhttp.MethodPost, "/financial-requests", mustJSON(body))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		r.Header.Set(middleware.HeaderUserID, "usr-fin")
		r.Header.Set(middleware.HeaderRequestID, "0123456789abcdef0123456789abcdef")
		r.Header.Set(middleware.HeaderRequestAt, time.Now().UTC().Format(time.RFC3339))
		return r
	}
	first := httptest.NewRecorder()
	e.ServeHTTP(first, mk())
	expect(t, first, stdhttp.StatusCreated)
	second := httptest.NewRecorder()
	e.ServeHTTP(second, mk())
	expect(t, second, stdhttp.StatusCreated)
	if first.Body.String() != second.Body.String() {
		t.Fatalf("replay mismatch: %s vs %s", first.Body.String(), second.Body.String())
	}

	rec = send(t, e, stdhttp.MethodGet, "/financial-requests?tenderId=ten-x", nil)
	if list := decode[[]financial.Request](t, rec.Body.Bytes()); len(list) != 1 {
		t.Fatalf("want exactly one stored request, got %d", len(list))
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/health", nil))
	expect(t, rec, stdhttp.StatusOK)
}
