package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/astrodash/astro-api/internal/domain/entity"
	errs "github.com/astrodash/astro-api/internal/domain/error"
	"github.com/astrodash/astro-api/internal/domain/port/client"
	"github.com/astrodash/astro-api/internal/domain/usecase/wallet"
	clientmocks "github.com/astrodash/astro-api/mocks/port/client"
	coremocks "github.com/astrodash/astro-api/mocks/port/core"
	persistencemocks "github.com/astrodash/astro-api/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orchestratorFixture struct {
	orchestrator *Orchestrator
	userRepo     *persistencemocks.MockUserRepository
	historyRepo  *persistencemocks.MockReportHistoryRepository
	ledgerRepo   *persistencemocks.MockLedgerRepository
	kundli       *clientmocks.MockKundliClient
	content      *clientmocks.MockContentGenerator
	renderer     *clientmocks.MockPDFRenderer
	calls        *[]string
}

func newOrchestratorFixture(t *testing.T) *orchestratorFixture {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	userRepo := persistencemocks.NewMockUserRepository(t)
	historyRepo := persistencemocks.NewMockReportHistoryRepository(t)
	ledgerRepo := persistencemocks.NewMockLedgerRepository(t)
	kundli := clientmocks.NewMockKundliClient(t)
	content := clientmocks.NewMockContentGenerator(t)
	renderer := clientmocks.NewMockPDFRenderer(t)

	walletUC := wallet.NewUseCase(ledgerRepo, userRepo, mockTime, mockLogger)
	calls := &[]string{}

	return &orchestratorFixture{
		orchestrator: NewOrchestrator(userRepo, historyRepo, walletUC, kundli, content, renderer, mockTime, mockLogger),
		userRepo:     userRepo,
		historyRepo:  historyRepo,
		ledgerRepo:   ledgerRepo,
		kundli:       kundli,
		content:      content,
		renderer:     renderer,
		calls:        calls,
	}
}

func (f *orchestratorFixture) record(name string) {
	*f.calls = append(*f.calls, name)
}

func activeUser(t *testing.T, balance string) *entity.User {
	t.Helper()
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	user, err := entity.NewUser(1, "Ananya Sharma", "ananya@example.com", balance, mockTime)
	require.NoError(t, err)
	user.Birth = entity.BirthDetails{
		DateOfBirth: "1992-04-17",
		TimeOfBirth: "06:45",
		BirthPlace:  "Mumbai",
		Latitude:    19.0760,
		Longitude:   72.8777,
	}
	return user
}

// expectDebit wires the wallet debit through the ledger mock and records
// its position in the call sequence
func (f *orchestratorFixture) expectDebit(ctx context.Context, user *entity.User, product entity.ReportProduct) {
	f.ledgerRepo.EXPECT().
		Apply(ctx, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Type == entity.TypeDebit &&
				txn.AmountInPaise == product.PricePaise &&
				txn.Description == fmt.Sprintf("%s generation", product.Type)
		})).
		Run(func(_ context.Context, _ *entity.Transaction) { f.record("debit") }).
		Return(user, nil).
		Once()
}

// expectRefund wires the compensating credit through the ledger mock
func (f *orchestratorFixture) expectRefund(ctx context.Context, user *entity.User, product entity.ReportProduct) {
	f.ledgerRepo.EXPECT().
		Apply(ctx, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Type == entity.TypeCredit &&
				txn.AmountInPaise == product.PricePaise &&
				txn.Description == fmt.Sprintf("Refund: %s generation failed", product.Type)
		})).
		Run(func(_ context.Context, _ *entity.Transaction) { f.record("refund") }).
		Return(user, nil).
		Once()
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	product, err := entity.ProductByType("Wealth Report")
	require.NoError(t, err)

	sampleContent := client.ReportContent{
		"fortune_report": map[string]any{
			"summary": "prosperous year ahead",
		},
	}

	t.Run("Successful generation", func(t *testing.T) {
		f := newOrchestratorFixture(t)
		user := activeUser(t, "1000.00")
		chart := client.KundliChart{"ascendant": "Leo"}

		f.userRepo.EXPECT().GetByID(ctx, uint64(1)).Return(user, nil).Once()
		f.expectDebit(ctx, user, product)

		f.kundli.EXPECT().
			ComputeChart(ctx, "Ananya Sharma", user.Birth).
			Run(func(_ context.Context, _ string, _ entity.BirthDetails) { f.record("kundli") }).
			Return(chart, nil).
			Once()

		f.historyRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(h *entity.ReportHistory) bool {
				return h.UserID == 1 &&
					h.ReportType == product.Type &&
					h.Status == entity.ReportGenerating &&
					h.AmountPaise == product.PricePaise
			})).
			Run(func(_ context.Context, h *entity.ReportHistory) {
				f.record("history-create")
				h.ID = 77
			}).
			Return(nil).
			Once()

		f.content.EXPECT().
			Generate(ctx, mock.MatchedBy(func(req client.ContentRequest) bool {
				return req.Product.Type == product.Type &&
					req.Name == "Ananya Sharma" &&
					req.Chart["ascendant"] == "Leo"
			})).
			Run(func(_ context.Context, _ client.ContentRequest) { f.record("content") }).
			Return(sampleContent, nil).
			Once()

		f.renderer.EXPECT().
			Render(ctx, mock.MatchedBy(func(data map[string]any) bool {
				fortune, _ := data["fortune_report"].(map[string]any)
				company, _ := fortune["company_details"].(map[string]any)
				return company["report_name"] == product.Type
			})).
			Run(func(_ context.Context, _ map[string]any) { f.record("render") }).
			Return([]byte("%PDF-1.4 fake"), nil).
			Once()

		f.historyRepo.EXPECT().
			UpdateStatus(ctx, mock.MatchedBy(func(h *entity.ReportHistory) bool {
				return h.ID == 77 &&
					h.Status == entity.ReportCompleted &&
					h.PDFURL == "/reports/77.pdf"
			})).
			Return(nil).
			Once()

		result, err := f.orchestrator.Generate(ctx, 1, "Wealth Report")

		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4 fake"), result.PDF)
		assert.Equal(t, entity.ReportCompleted, result.History.Status)
		assert.Equal(t, "/reports/77.pdf", result.History.PDFURL)

		// The debit lands before any external call is made.
		assert.Equal(t, []string{"debit", "kundli", "history-create", "content", "render"}, *f.calls)
	})

	t.Run("Unknown report type fails before any lookup", func(t *testing.T) {
		f := newOrchestratorFixture(t)

		result, err := f.orchestrator.Generate(ctx, 1, "Tarot Report")

		assert.ErrorIs(t, err, errs.ErrUnknownReportType)
		assert.Nil(t, result)
		f.userRepo.AssertNotCalled(t, "GetByID")
		f.ledgerRepo.AssertNotCalled(t, "Apply")
	})

	t.Run("Unknown user", func(t *testing.T) {
		f := newOrchestratorFixture(t)

		f.userRepo.EXPECT().GetByID(ctx, uint64(9)).Return(nil, errs.ErrUserNotFound).Once()

		_, err := f.orchestrator.Generate(ctx, 9, "Wealth Report")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		f.ledgerRepo.AssertNotCalled(t, "Apply")
	})

	t.Run("Blocked user cannot generate", func(t *testing.T) {
		f := newOrchestratorFixture(t)
		user := activeUser(t, "1000.00")
		user.Status = entity.StatusBlocked

		f.userRepo.EXPECT().GetByID(ctx, uint64(1)).Return(user, nil).Once()

		_, err := f.orchestrator.Generate(ctx, 1, "Wealth Report")

		assert.ErrorIs(t, err, errs.ErrUserBlocked)
		f.ledgerRepo.AssertNotCalled(t, "Apply")
		f.kundli.AssertNotCalled(t, "ComputeChart")
	})

	t.Run("Insufficient balance rejected before any external call", func(t *testing.T) {
		f := newOrchestratorFixture(t)
		user := activeUser(t, "100.00")

		f.userRepo.EXPECT().GetByID(ctx, uint64(1)).Return(user, nil).Once()

		_, err := f.orchestrator.Generate(ctx, 1, "Wealth Report")

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		var detailed *errs.InsufficientBalanceError
		require.ErrorAs(t, err, &detailed)
		assert.Equal(t, "699.00", detailed.Required)
		assert.Equal(t, "100.00", detailed.Available)
		f.ledgerRepo.AssertNotCalled(t, "Apply")
		f.kundli.AssertNotCalled(t, "ComputeChart")
	})

	t.Run("Debit failure stops the pipeline", func(t *testing.T) {
		f := newOrchestratorFixture(t)
		user := activeUser(t, "1000.00")

		f.userRepo.EXPECT().GetByID(ctx, uint64(1)).Return(user, nil).Once()
		f.ledgerRepo.EXPECT().Apply(ctx, mock.Anything).Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := f.orchestrator.Generate(ctx, 1, "Wealth Report")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		f.kundli.AssertNotCalled(t, "ComputeChart")
		f.historyRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Kundli failure records a failed attempt and refunds", func(t *testing.T) {
		f := newOrchestratorFixture(t)
		user := activeUser(t, "1000.00")

		f.userRepo.EXPECT().GetByID(ctx, uint64(1)).Return(user, nil).Once()
		f.expectDebit(ctx, user, product)

		f.kundli.EXPECT().
			ComputeChart(ctx, "Ananya Sharma", user.Birth).
			Return(nil, errs.ErrKundliComputation).
			Once()

		f.historyRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(h *entity.ReportHistory) bool {
				return h.Status == entity.ReportFailed &&
					h.ReportType == product.Type &&
					h.Error != "" &&
					h.Metadata["reportType"] == product.Type
			})).
			Return(nil).
			Once()

		f.expectRefund(ctx, user, product)

		result, err := f.orchestrator.Generate(ctx, 1, "Wealth Report")

		assert.ErrorIs(t, err, errs.ErrKundliComputation)
		assert.Nil(t, result)
		var pipeline *errs.PipelineError
		require.ErrorAs(t, err, &pipeline)
		assert.Equal(t, "kundli", pipeline.Stage)
	})

	t.Run("History insert failure refunds the charge", func(t *testing.T) {
		f := newOrchestratorFixture(t)
		user := activeUser(t, "1000.00")

		f.userRepo.EXPECT().GetByID(ctx, uint64(1)).Return(user, nil).Once()
		f.expectDebit(ctx, user, product)
		f.kundli.EXPECT().ComputeChart(ctx, "Ananya Sharma", user.Birth).Return(client.KundliChart{}, nil).Once()
		f.historyRepo.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDatabaseConnection).Once()
		f.expectRefund(ctx, user, product)

		_, err := f.orchestrator.Generate(ctx, 1, "Wealth Report")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		f.content.AssertNotCalled(t, "Generate")
	})

	t.Run("Content failure marks the attempt failed and refunds", func(t *testing.T) {
		f := newOrchestratorFixture(t)
		user := activeUser(t, "1000.00")

		f.userRepo.EXPECT().GetByID(ctx, uint64(1)).Return(user, nil).Once()
		f.expectDebit(ctx, user, product)
		f.kundli.EXPECT().ComputeChart(ctx, "Ananya Sharma", user.Birth).Return(client.KundliChart{}, nil).Once()

		f.historyRepo.EXPECT().
			Create(ctx, mock.Anything).
			Run(func(_ context.Context, h *entity.ReportHistory) { h.ID = 42 }).
			Return(nil).
			Once()

		f.content.EXPECT().Generate(ctx, mock.Anything).Return(nil, errs.ErrContentGeneration).Once()

		f.historyRepo.EXPECT().
			UpdateStatus(ctx, mock.MatchedBy(func(h *entity.ReportHistory) bool {
				return h.ID == 42 && h.Status == entity.ReportFailed && h.Error != ""
			})).
			Return(nil).
			Once()

		f.expectRefund(ctx, user, product)

		_, err := f.orchestrator.Generate(ctx, 1, "Wealth Report")

		assert.ErrorIs(t, err, errs.ErrContentGeneration)
		var pipeline *errs.PipelineError
		require.ErrorAs(t, err, &pipeline)
		assert.Equal(t, "content-generation", pipeline.Stage)
		f.renderer.AssertNotCalled(t, "Render")
	})

	t.Run("Render failure marks the attempt failed and refunds", func(t *testing.T) {
		f := newOrchestratorFixture(t)
		user := activeUser(t, "1000.00")

		f.userRepo.EXPECT().GetByID(ctx, uint64(1)).Return(user, nil).Once()
		f.expectDebit(ctx, user, product)
		f.kundli.EXPECT().ComputeChart(ctx, "Ananya Sharma", user.Birth).Return(client.KundliChart{}, nil).Once()
		f.historyRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		f.content.EXPECT().Generate(ctx, mock.Anything).Return(sampleContent, nil).Once()
		f.renderer.EXPECT().Render(ctx, mock.Anything).Return(nil, errs.ErrRenderTimeout).Once()

		f.historyRepo.EXPECT().
			UpdateStatus(ctx, mock.MatchedBy(func(h *entity.ReportHistory) bool {
				return h.Status == entity.ReportFailed
			})).
			Return(nil).
			Once()

		f.expectRefund(ctx, user, product)

		_, err := f.orchestrator.Generate(ctx, 1, "Wealth Report")

		assert.ErrorIs(t, err, errs.ErrRenderTimeout)
		var pipeline *errs.PipelineError
		require.ErrorAs(t, err, &pipeline)
		assert.Equal(t, "pdf-render", pipeline.Stage)
	})

	t.Run("Completion bookkeeping failure does not fail the request", func(t *testing.T) {
		f := newOrchestratorFixture(t)
		user := activeUser(t, "1000.00")

		f.userRepo.EXPECT().GetByID(ctx, uint64(1)).Return(user, nil).Once()
		f.expectDebit(ctx, user, product)
		f.kundli.EXPECT().ComputeChart(ctx, "Ananya Sharma", user.Birth).Return(client.KundliChart{}, nil).Once()
		f.historyRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		f.content.EXPECT().Generate(ctx, mock.Anything).Return(sampleContent, nil).Once()
		f.renderer.EXPECT().Render(ctx, mock.Anything).Return([]byte("pdf"), nil).Once()
		f.historyRepo.EXPECT().UpdateStatus(ctx, mock.Anything).Return(errs.ErrDatabaseConnection).Once()

		result, err := f.orchestrator.Generate(ctx, 1, "Wealth Report")

		require.NoError(t, err)
		assert.Equal(t, []byte("pdf"), result.PDF)
		assert.Equal(t, entity.ReportCompleted, result.History.Status)
	})

	t.Run("Refund failure still surfaces the pipeline error", func(t *testing.T) {
		f := newOrchestratorFixture(t)
		user := activeUser(t, "1000.00")

		f.userRepo.EXPECT().GetByID(ctx, uint64(1)).Return(user, nil).Once()
		f.expectDebit(ctx, user, product)
		f.kundli.EXPECT().ComputeChart(ctx, "Ananya Sharma", user.Birth).Return(nil, errs.ErrKundliComputation).Once()
		f.historyRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()

		f.ledgerRepo.EXPECT().
			Apply(ctx, mock.MatchedBy(func(txn *entity.Transaction) bool {
				return txn.Type == entity.TypeCredit
			})).
			Return(nil, errs.ErrDatabaseConnection).
			Once()

		_, err := f.orchestrator.Generate(ctx, 1, "Wealth Report")

		assert.ErrorIs(t, err, errs.ErrKundliComputation)
	})
}

func TestReportData(t *testing.T) {
	product, err := entity.ProductByType("Chakra Healing Report")
	require.NoError(t, err)

	t.Run("Injects the report name into existing content", func(t *testing.T) {
		content := client.ReportContent{
			"fortune_report": map[string]any{
				"company_details": map[string]any{"website": "example.com"},
				"summary":         "balanced chakras",
			},
			"extra": "kept",
		}

		data := reportData(product, content)

		fortune := data["fortune_report"].(map[string]any)
		company := fortune["company_details"].(map[string]any)
		assert.Equal(t, "Chakra Healing Report", company["report_name"])
		assert.Equal(t, "example.com", company["website"])
		assert.Equal(t, "balanced chakras", fortune["summary"])
		assert.Equal(t, "kept", data["extra"])
	})

	t.Run("Builds the nesting when content lacks it", func(t *testing.T) {
		data := reportData(product, client.ReportContent{})

		fortune := data["fortune_report"].(map[string]any)
		company := fortune["company_details"].(map[string]any)
		assert.Equal(t, "Chakra Healing Report", company["report_name"])
	})
}
