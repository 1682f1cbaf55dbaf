package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"pixel-recruiter/internal/chat/router"
	"pixel-recruiter/internal/job/repository"
)

// retrieve executes the decision's retrieval strategy and renders the
// records into a compact context block. The context is the only factual
// grounding the synthesizer gets, so retrieval errors are fatal here —
// fabricating a context would be worse than failing the request.
func (uc *implUseCase) retrieve(ctx context.Context, decision router.Decision, question string) (string, error) {
	switch decision.Tool {
	case router.ToolSalaryQuery:
		return uc.retrieveBySalary(ctx, decision)
	case router.ToolRecencyQuery:
		return uc.retrieveByRecency(ctx, decision)
	case router.ToolSemanticQuery:
		return uc.retrieveSemantic(ctx, decision, question)
	default:
		// Unknown tags route to semantic search as a documented fallback;
		// Decision.Normalize should have caught this already.
		return uc.retrieveSemantic(ctx, decision, question)
	}
}

func (uc *implUseCase) retrieveBySalary(ctx context.Context, decision router.Decision) (string, error) {
	jobs, err := uc.repo.ListBySalary(ctx, repository.ListBySalaryOptions{
		Direction:   string(decision.Sort),
		TitleFilter: decision.SearchTerm,
		Limit:       decision.Limit,
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("Strict database result for salary sort")
	writeFilterSuffix(&sb, decision.SearchTerm)
	sb.WriteString(":\n")

	for _, j := range jobs {
		fmt.Fprintf(&sb, "- Role: %s | Location: %s | Company: %s | Pay: %s | Tags: [%s]\n",
			j.Title, j.Location, j.CompanyName, j.Salary, strings.Join(j.TagNames, ", "))
	}
	return sb.String(), nil
}

func (uc *implUseCase) retrieveByRecency(ctx context.Context, decision router.Decision) (string, error) {
	jobs, err := uc.repo.ListByRecency(ctx, repository.ListByRecencyOptions{
		TitleFilter: decision.SearchTerm,
		Limit:       decision.Limit,
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("Strict database result for recent jobs")
	writeFilterSuffix(&sb, decision.SearchTerm)
	sb.WriteString(":\n")

	for _, j := range jobs {
		fmt.Fprintf(&sb, "- Role: %s | Location: %s | Company: %s | Posted: %s | Tags: [%s]\n",
			j.Title, j.Location, j.CompanyName, humanize.Time(j.CreatedAt), strings.Join(j.TagNames, ", "))
	}
	return sb.String(), nil
}

func (uc *implUseCase) retrieveSemantic(ctx context.Context, decision router.Decision, question string) (string, error) {
	matches, err := uc.vectorRepo.SearchJobs(ctx, question, decision.Limit)
	if err != nil {
		return "", err
	}

	if len(matches) == 0 {
		return NoRelevantJobsMarker, nil
	}

	ids := make([]int64, len(matches))
	for i, m := range matches {
		ids[i] = m.JobID
	}

	jobs, err := uc.repo.GetByIDs(ctx, ids, decision.Limit)
	if err != nil {
		return "", err
	}
	if len(jobs) == 0 {
		return NoRelevantJobsMarker, nil
	}

	var sb strings.Builder
	sb.WriteString("Here are the most relevant jobs found:\n\n")
	for _, j := range jobs {
		fmt.Fprintf(&sb, "JOB ID: %d\nTITLE: %s\nCOMPANY: %s\nLOCATION: %s\nSALARY: %s\nTAGS: %s\nDESCRIPTION: %s\n-----------------------------------\n",
			j.ID, j.Title, j.CompanyName, j.Location, j.Salary,
			strings.Join(j.TagNames, ", "), truncate(j.Description, descriptionLimit))
	}
	return sb.String(), nil
}

func writeFilterSuffix(sb *strings.Builder, term string) {
	if term != "" {
		fmt.Fprintf(sb, " (Filter: %s)", term)
	}
}

// truncate caps text at maxLen runes, appending an ellipsis when cut.
func truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
