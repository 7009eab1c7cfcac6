package report

import (
	"context"
	"fmt"

	"github.com/astrodash/astro-api/internal/domain/entity"
	errs "github.com/astrodash/astro-api/internal/domain/error"
	"github.com/astrodash/astro-api/internal/domain/port/client"
	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"github.com/astrodash/astro-api/internal/domain/port/persistence"
	"github.com/astrodash/astro-api/internal/domain/usecase/wallet"
)

// Pipeline stage names recorded into failed history entries
const (
	stageKundli  = "kundli"
	stageContent = "content-generation"
	stageRender  = "pdf-render"
)

// Orchestrator drives one report generation request end to end: wallet
// debit, kundli computation, content generation, PDF rendering and history
// persistence. Every attempt leaves an auditable trail regardless of where
// it fails, and no failure is retried automatically.
type Orchestrator struct {
	userRepo     persistence.UserRepository
	historyRepo  persistence.ReportHistoryRepository
	walletUC     *wallet.UseCase
	kundli       client.KundliClient
	content      client.ContentGenerator
	renderer     client.PDFRenderer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewOrchestrator creates a new report orchestrator
func NewOrchestrator(
	userRepo persistence.UserRepository,
	historyRepo persistence.ReportHistoryRepository,
	walletUC *wallet.UseCase,
	kundli client.KundliClient,
	content client.ContentGenerator,
	renderer client.PDFRenderer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Orchestrator {
	return &Orchestrator{
		userRepo:     userRepo,
		historyRepo:  historyRepo,
		walletUC:     walletUC,
		kundli:       kundli,
		content:      content,
		renderer:     renderer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GenerateResult is the outcome of a successful report generation
type GenerateResult struct {
	PDF     []byte
	History *entity.ReportHistory
}

// Generate runs the report pipeline for one user and report product:
//
//  1. Verify the user is active and the wallet covers the price; debit the
//     price as a ledger transaction before any external call is made.
//  2. Compute the kundli chart from the user's birth details.
//  3. Persist a generating history row before the expensive content call.
//  4. Generate the schema-shaped report content.
//  5. Render the PDF.
//  6. Record the terminal outcome, refunding the debit if the pipeline
//     failed after charging.
//
// Execution is at-most-once per invocation; a failed attempt requires
// explicit re-submission, which is an entirely new attempt.
func (o *Orchestrator) Generate(ctx context.Context, userID uint64, reportType string) (*GenerateResult, error) {
	product, err := entity.ProductByType(reportType)
	if err != nil {
		return nil, err
	}

	user, err := o.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive() {
		return nil, errs.ErrUserBlocked
	}

	// Cost avoidance: reject before touching any external service.
	if !user.CanAfford(product.PricePaise) {
		return nil, errs.NewInsufficientBalanceError(userID, product.Price(), user.FormattedBalance())
	}

	// Charge the price up front. The sufficiency check inside the ledger is
	// atomic with the debit, so a concurrent spend cannot slip between the
	// check above and the charge.
	if _, err := o.walletUC.ApplyTransaction(ctx, userID, product.Price(), string(entity.TypeDebit),
		fmt.Sprintf("%s generation", product.Type)); err != nil {
		return nil, err
	}

	chart, err := o.kundli.ComputeChart(ctx, user.Name, user.Birth)
	if err != nil {
		stageErr := errs.NewPipelineError(stageKundli, userID, product.Type, err)
		o.recordFailure(ctx, user, product, stageErr)
		o.refund(ctx, user, product)
		return nil, stageErr
	}

	// The generating row goes in before the expensive content call so a
	// crash mid-pipeline is observable as a stuck generating record.
	history, err := entity.NewReportHistory(userID, product.Type, product.Type, product.PricePaise, o.timeProvider)
	if err != nil {
		o.refund(ctx, user, product)
		return nil, err
	}
	if err := o.historyRepo.Create(ctx, history); err != nil {
		o.refund(ctx, user, product)
		return nil, err
	}

	content, err := o.content.Generate(ctx, client.ContentRequest{
		Product: product,
		Name:    user.Name,
		Birth:   user.Birth,
		Chart:   chart,
	})
	if err != nil {
		stageErr := errs.NewPipelineError(stageContent, userID, product.Type, err)
		o.finishFailed(ctx, history, stageErr)
		o.refund(ctx, user, product)
		return nil, stageErr
	}

	pdf, err := o.renderer.Render(ctx, reportData(product, content))
	if err != nil {
		stageErr := errs.NewPipelineError(stageRender, userID, product.Type, err)
		o.finishFailed(ctx, history, stageErr)
		o.refund(ctx, user, product)
		return nil, stageErr
	}

	pdfURL := fmt.Sprintf("/reports/%d.pdf", history.ID)
	metadata := map[string]any{
		"reportDetails": map[string]any(content),
		"userDetails": map[string]any{
			"name":  user.Name,
			"email": user.Email,
		},
	}
	if err := history.Complete(pdfURL, metadata); err != nil {
		return nil, err
	}
	if err := o.historyRepo.UpdateStatus(ctx, history); err != nil {
		// The PDF exists; surface the entry inconsistency but not to the
		// caller, who already paid for and received the report.
		o.logger.Error("Failed to record completed report", map[string]any{
			"report_id": history.ID,
			"user_id":   userID,
			"error":     err.Error(),
		})
	}

	o.logger.Info("Report generated", map[string]any{
		"report_id":   history.ID,
		"user_id":     userID,
		"report_type": product.Type,
		"pdf_bytes":   len(pdf),
	})

	return &GenerateResult{PDF: pdf, History: history}, nil
}

// finishFailed writes the terminal failed outcome onto an existing
// generating row
func (o *Orchestrator) finishFailed(ctx context.Context, history *entity.ReportHistory, stageErr error) {
	metadata := map[string]any{
		"errorTimestamp": o.timeProvider.Now().UTC().Format("2006-01-02T15:04:05Z07:00"),
		"reportType":     history.ReportType,
	}
	if err := history.Fail(stageErr.Error(), metadata); err != nil {
		o.logger.Error("Could not mark report attempt failed", map[string]any{
			"report_id": history.ID,
			"error":     err.Error(),
		})
		return
	}
	if err := o.historyRepo.UpdateStatus(ctx, history); err != nil {
		o.logger.Error("Failed to persist failed report attempt", map[string]any{
			"report_id": history.ID,
			"error":     err.Error(),
		})
	}
}

// recordFailure inserts a failed history row for failures that happen
// before the generating row exists
func (o *Orchestrator) recordFailure(ctx context.Context, user *entity.User, product entity.ReportProduct, stageErr error) {
	history, err := entity.NewReportHistory(user.ID, product.Type, product.Type, product.PricePaise, o.timeProvider)
	if err != nil {
		return
	}
	metadata := map[string]any{
		"errorTimestamp": o.timeProvider.Now().UTC().Format("2006-01-02T15:04:05Z07:00"),
		"reportType":     product.Type,
	}
	if err := history.Fail(stageErr.Error(), metadata); err != nil {
		return
	}
	if err := o.historyRepo.Create(ctx, history); err != nil {
		o.logger.Error("Failed to record failed report attempt", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
	}
}

// refund issues the compensating credit after a pipeline failure. The
// ledger is immutable, so the charge stays on record and the refund is a
// second entry. Best effort: a refund failure is logged for operational
// follow-up, it never masks the pipeline error.
func (o *Orchestrator) refund(ctx context.Context, user *entity.User, product entity.ReportProduct) {
	_, err := o.walletUC.ApplyTransaction(ctx, user.ID, product.Price(), string(entity.TypeCredit),
		fmt.Sprintf("Refund: %s generation failed", product.Type))
	if err != nil {
		o.logger.Error("Failed to refund report charge", map[string]any{
			"user_id":     user.ID,
			"report_type": product.Type,
			"amount":      product.Price(),
			"error":       err.Error(),
		})
	}
}

// reportData merges the generated content with the report name the
// template catalog keys on
func reportData(product entity.ReportProduct, content client.ReportContent) map[string]any {
	data := make(map[string]any, len(content)+1)
	for k, v := range content {
		data[k] = v
	}

	fortune, _ := data["fortune_report"].(map[string]any)
	if fortune == nil {
		fortune = map[string]any{}
	}
	company, _ := fortune["company_details"].(map[string]any)
	if company == nil {
		company = map[string]any{}
	}
	company["report_name"] = product.Type
	fortune["company_details"] = company
	data["fortune_report"] = fortune

	return data
}
