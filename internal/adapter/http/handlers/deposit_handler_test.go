package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agentops_intake/internal/adapter/http/handlers/mocks"
	"agentops_intake/internal/domain/entities"
	"agentops_intake/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newDepositRouter(h *DepositHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/sessions/:id/proposal/deposit", h.CollectDeposit)
	return r
}

func TestDepositHandler_CollectDeposit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		r := newDepositRouter(NewDepositHandler(uc, zap.NewNop()))

		w := do(r, http.MethodPost, "/v1/sessions/sess_1/proposal/deposit", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("proposal not sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		r := newDepositRouter(NewDepositHandler(uc, zap.NewNop()))

		uc.EXPECT().Collect(gomock.Any(), "sess_1", "", gomock.Any()).Return(entities.Deposit{}, entities.ErrProposalNotSent)

		w := do(r, http.MethodPost, "/v1/sessions/sess_1/proposal/deposit", "")
		if w.Code != http.StatusPreconditionFailed {
			t.Fatalf("expected 412, got %d", w.Code)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		r := newDepositRouter(NewDepositHandler(uc, zap.NewNop()))

		uc.EXPECT().Collect(gomock.Any(), "sess_1", "a@b.io", gomock.Any()).Return(entities.Deposit{}, usecase.ErrPaymentGatewayUnauthorized)

		w := do(r, http.MethodPost, "/v1/sessions/sess_1/proposal/deposit", `{"payer_email":"a@b.io"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("null body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		r := newDepositRouter(NewDepositHandler(uc, zap.NewNop()))

		uc.EXPECT().Collect(gomock.Any(), "sess_1", "", gomock.Nil()).Return(entities.Deposit{ID: "dep_1", Status: entities.DepositStatusApproved}, nil)

		w := do(r, http.MethodPost, "/v1/sessions/sess_1/proposal/deposit", "null")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		r := newDepositRouter(NewDepositHandler(uc, zap.NewNop()))

		now := time.Now().UTC()
		uc.EXPECT().Collect(gomock.Any(), "sess_1", "a@b.io", gomock.Any()).DoAndReturn(
			func(_ any, _, _ string, payload json.RawMessage) (entities.Deposit, error) {
				if string(payload) != `{"payment_method_id":"pix"}` {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return entities.Deposit{ID: "dep_1", ProposalID: "prop_1", Amount: 22500, Status: entities.DepositStatusApproved, CreatedAt: now}, nil
			})

		w := do(r, http.MethodPost, "/v1/sessions/sess_1/proposal/deposit",
			`{"payer_email":"a@b.io","mp_payload":{"payment_method_id":"pix"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decode(t, w); body["deposit_id"] != "dep_1" || body["amount"] != 22500.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReadDepositRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readDepositRequest(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readDepositRequest(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	req, err := readDepositRequest(makeCtx("   "))
	if err != nil || req.PayerEmail != "" || req.MPPayload != nil {
		t.Fatalf("expected empty request, got %+v err=%v", req, err)
	}

	req, err = readDepositRequest(makeCtx(" null "))
	if err != nil || req.PayerEmail != "" || req.MPPayload != nil {
		t.Fatalf("expected null body treated as empty, got %+v err=%v", req, err)
	}

	req, err = readDepositRequest(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(req.MPPayload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected bare payload forwarded, got %+v err=%v", req, err)
	}

	req, err = readDepositRequest(makeCtx(`{"payer_email":"a@b.io","mp_payload":null}`))
	if err != nil || req.PayerEmail != "a@b.io" || req.MPPayload != nil {
		t.Fatalf("expected envelope with null payload dropped, got %+v err=%v", req, err)
	}

	if _, err := readDepositRequest(makeCtx(`[1,2]`)); err == nil {
		t.Fatalf("expected non-object body rejected")
	}
}
