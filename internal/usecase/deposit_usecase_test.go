package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"agentops_intake/internal/domain/entities"
	"agentops_intake/internal/infrastructure/clock"
	mock_interfaces "agentops_intake/internal/usecase/interfaces/mocks"
	"agentops_intake/internal/workflow"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// sentSession drives a fresh session up to a sent proposal priced at 45000.
func sentSession(t *testing.T) (*workflow.Session, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual(testStart)
	s := workflow.New("sess_1", workflow.DefaultConfig(), clk, clk)
	for _, text := range []string{"I need a web application", "I have a budget of $50k and a timeline of 3 months"} {
		if _, err := s.SubmitUtterance(text); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		clk.Advance(workflow.DefaultConfig().TypingDelay)
	}
	if _, err := s.GenerateProposal(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.SendProposal(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s, clk
}

func TestDepositUseCase_Collect_Validations(t *testing.T) {
	t.Run("blank session id", func(t *testing.T) {
		uc := NewDepositUseCase(nil, nil, 0.5, clock.System{}, zap.NewNop())
		_, err := uc.Collect(context.Background(), " ", "", nil)
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewDepositUseCase(nil, nil, 0.5, clock.System{}, zap.NewNop())
		_, err := uc.Collect(context.Background(), "sess_1", "", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewDepositUseCase(repo, nil, 0.5, clock.System{}, zap.NewNop())

		_, err := uc.Collect(context.Background(), "sess_1", "a@b.io", nil)
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("session not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositUseCase(repo, gateway, 0.5, clock.System{}, zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "sess_1").Return(nil, nil)

		_, err := uc.Collect(context.Background(), "sess_1", "a@b.io", nil)
		if !errors.Is(err, entities.ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("proposal not sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositUseCase(repo, gateway, 0.5, clock.System{}, zap.NewNop())

		clk := clock.NewManual(testStart)
		repo.EXPECT().GetByID(gomock.Any(), "sess_1").Return(workflow.New("sess_1", workflow.DefaultConfig(), clk, clk), nil)

		_, err := uc.Collect(context.Background(), "sess_1", "a@b.io", nil)
		if !errors.Is(err, entities.ErrPrecondition) {
			t.Fatalf("expected precondition error, got %v", err)
		}
	})

	t.Run("missing payer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositUseCase(repo, gateway, 0.5, clock.System{}, zap.NewNop())

		s, _ := sentSession(t)
		repo.EXPECT().GetByID(gomock.Any(), "sess_1").Return(s, nil).Times(2)

		_, err := uc.Collect(context.Background(), "sess_1", "", nil)
		if !errors.Is(err, entities.ErrInvalidPayerEmail) {
			t.Fatalf("expected ErrInvalidPayerEmail, got %v", err)
		}

		// reservation released
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("1", "approved", json.RawMessage(`{}`), nil)
		if _, err := uc.Collect(context.Background(), "sess_1", "a@b.io", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDepositUseCase_Collect_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISessionRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	s, clk := sentSession(t)
	uc := NewDepositUseCase(repo, gateway, 0.5, clk, zap.NewNop())

	repo.EXPECT().GetByID(gomock.Any(), "sess_1").Return(s, nil).Times(2)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
		var req map[string]any
		if err := json.Unmarshal(payload, &req); err != nil {
			t.Fatalf("payload is not json: %v", err)
		}
		if req["transaction_amount"] != 22500.0 {
			t.Fatalf("expected amount from proposal, got %v", req["transaction_amount"])
		}
		p, _ := s.Proposal()
		if req["external_reference"] != p.ID {
			t.Fatalf("expected external_reference %s, got %v", p.ID, req["external_reference"])
		}
		if req["payment_method_id"] != "pix" {
			t.Fatalf("expected caller fields kept, got %v", req)
		}
		payer, _ := req["payer"].(map[string]any)
		if payer["email"] != "client@acme.io" {
			t.Fatalf("expected payer email, got %v", req["payer"])
		}
		return "987", "approved", json.RawMessage(`{"id":987,"status":"approved"}`), nil
	})

	d, err := uc.Collect(context.Background(), "sess_1", "client@acme.io",
		json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Amount != 22500 || d.Status != entities.DepositStatusApproved || d.ProviderPaymentID != "987" {
		t.Fatalf("unexpected deposit: %+v", d)
	}
	if d.ProviderPayload["status"] != "approved" {
		t.Fatalf("expected parsed provider payload, got %v", d.ProviderPayload)
	}
	if got, ok := s.Deposit(); !ok || got.ID != d.ID {
		t.Fatalf("expected deposit recorded on session")
	}

	_, err = uc.Collect(context.Background(), "sess_1", "client@acme.io", nil)
	if !errors.Is(err, entities.ErrDepositAlreadyCollected) {
		t.Fatalf("expected ErrDepositAlreadyCollected, got %v", err)
	}
}

func TestDepositUseCase_Collect_NullPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISessionRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	s, clk := sentSession(t)
	uc := NewDepositUseCase(repo, gateway, 0.5, clk, zap.NewNop())

	repo.EXPECT().GetByID(gomock.Any(), "sess_1").Return(s, nil).Times(2)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
		var req map[string]any
		if err := json.Unmarshal(payload, &req); err != nil {
			t.Fatalf("payload is not json: %v", err)
		}
		payer, _ := req["payer"].(map[string]any)
		if payer["email"] != "payer@example.com" || req["transaction_amount"] != 22500.0 {
			t.Fatalf("unexpected payload: %v", req)
		}
		return "42", "approved", json.RawMessage(`{"id":42}`), nil
	})

	d, err := uc.Collect(context.Background(), "sess_1", "payer@example.com", json.RawMessage("null"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Status != entities.DepositStatusApproved {
		t.Fatalf("unexpected deposit: %+v", d)
	}

	_, err = uc.Collect(context.Background(), "sess_1", "payer@example.com", nil)
	if !errors.Is(err, entities.ErrDepositAlreadyCollected) {
		t.Fatalf("expected ErrDepositAlreadyCollected, got %v", err)
	}
}

func TestDepositUseCase_Collect_ReleasesReservationOnPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISessionRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	s, clk := sentSession(t)
	uc := NewDepositUseCase(repo, gateway, 0.5, clk, zap.NewNop())

	repo.EXPECT().GetByID(gomock.Any(), "sess_1").Return(s, nil).Times(2)
	gomock.InOrder(
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, json.RawMessage) (string, string, json.RawMessage, error) {
			panic("gateway exploded")
		}),
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("43", "approved", json.RawMessage(`{}`), nil),
	)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected the gateway panic to propagate")
			}
		}()
		_, _ = uc.Collect(context.Background(), "sess_1", "payer@example.com", nil)
	}()

	if _, err := uc.Collect(context.Background(), "sess_1", "payer@example.com", nil); err != nil {
		t.Fatalf("expected reservation released after panic, got %v", err)
	}
}

func TestDepositUseCase_Collect_GatewayErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"bad request", errors.New(`{"error":"bad_request","status":400}`), ErrPaymentGatewayBadRequest},
		{"unauthorized", errors.New(`{"error":"unauthorized","status":401}`), ErrPaymentGatewayUnauthorized},
		{"invalid users", errors.New(`{"message":"Invalid users involved","code":2034}`), ErrPaymentGatewayInvalidUsers},
		{"customer not found", errors.New(`Customer not found`), ErrPaymentGatewayCustomerNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockISessionRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			s, clk := sentSession(t)
			uc := NewDepositUseCase(repo, gateway, 0.5, clk, zap.NewNop())

			repo.EXPECT().GetByID(gomock.Any(), "sess_1").Return(s, nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.Collect(context.Background(), "sess_1", "a@b.io", nil)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if _, ok := s.Deposit(); ok {
				t.Fatalf("failed payment must not record a deposit")
			}
		})
	}
}

func TestDepositStatus(t *testing.T) {
	cases := map[string]entities.DepositStatus{
		"approved":   entities.DepositStatusApproved,
		"rejected":   entities.DepositStatusRejected,
		"in_process": entities.DepositStatusPending,
		"":           entities.DepositStatusPending,
	}
	for in, want := range cases {
		if got := depositStatus(in); got != want {
			t.Fatalf("depositStatus(%q) = %s, want %s", in, got, want)
		}
	}
}
