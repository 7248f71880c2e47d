package gh

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
	"github.com/m-mizutani/repoward/pkg/utils/logging"
)

// REST branch protection API does not accept wildcard patterns, so rules are created via GraphQL.
const createBranchProtectionRuleMutation = `mutation($input: CreateBranchProtectionRuleInput!) {
  createBranchProtectionRule(input: $input) {
    branchProtectionRule { id pattern }
  }
}`

type branchProtectionRuleInput struct {
	RepositoryID                   string `json:"repositoryId"`
	Pattern                        string `json:"pattern"`
	IsAdminEnforced                bool   `json:"isAdminEnforced"`
	AllowsDeletions                bool   `json:"allowsDeletions"`
	AllowsForcePushes              bool   `json:"allowsForcePushes"`
	RequiresCommitSignatures       bool   `json:"requiresCommitSignatures"`
	RequiresConversationResolution bool   `json:"requiresConversationResolution"`
	RequiresLinearHistory          bool   `json:"requiresLinearHistory"`
	RequiresStatusChecks           bool   `json:"requiresStatusChecks"`
	RequiresStrictStatusChecks     bool   `json:"requiresStrictStatusChecks"`
	RequiresApprovingReviews       bool   `json:"requiresApprovingReviews"`
	RequiredApprovingReviewCount   int    `json:"requiredApprovingReviewCount"`
	DismissesStaleReviews          bool   `json:"dismissesStaleReviews"`
	RestrictsReviewDismissals      bool   `json:"restrictsReviewDismissals"`
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type createBranchProtectionRuleResponse struct {
	Data struct {
		CreateBranchProtectionRule struct {
			BranchProtectionRule struct {
				ID      string `json:"id"`
				Pattern string `json:"pattern"`
			} `json:"branchProtectionRule"`
		} `json:"createBranchProtectionRule"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

func (x *Client) CreateBranchProtection(ctx context.Context, repo *model.RepositoryHandle, rule *model.BranchProtectionRule) error {
	if repo.NodeID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "repository node ID is required for branch protection",
			goerr.V("repo", repo.FullName()),
		)
	}

	input := branchProtectionRuleInput{
		RepositoryID:                   repo.NodeID,
		Pattern:                        rule.Pattern,
		IsAdminEnforced:                rule.EnforceAdmins,
		AllowsDeletions:                rule.AllowsDeletions,
		AllowsForcePushes:              rule.AllowsForcePushes,
		RequiresCommitSignatures:       rule.RequiresCommitSignatures,
		RequiresConversationResolution: rule.RequiresConversationResolution,
		RequiresLinearHistory:          rule.RequiresLinearHistory,
		RequiresStatusChecks:           rule.RequiresStatusChecks,
		RequiresStrictStatusChecks:     rule.RequiresStrictStatusChecks,
		RequiresApprovingReviews:       rule.RequiresApprovingReviews,
		RequiredApprovingReviewCount:   rule.RequiredApprovingReviewCount,
		DismissesStaleReviews:          rule.DismissesStaleReviews,
		RestrictsReviewDismissals:      rule.RestrictsReviewDismissals,
	}

	body := &graphqlRequest{
		Query:     createBranchProtectionRuleMutation,
		Variables: map[string]any{"input": input},
	}

	req, err := x.client.NewRequest(http.MethodPost, x.graphqlPath, body)
	if err != nil {
		return goerr.Wrap(err, "failed to build GraphQL request")
	}

	var resp createBranchProtectionRuleResponse
	if _, err := x.client.Do(ctx, req, &resp); err != nil {
		return goerr.Wrap(err, "failed to create branch protection rule",
			goerr.V("repo", repo.FullName()),
			goerr.V("pattern", rule.Pattern),
		)
	}

	if len(resp.Errors) > 0 {
		messages := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			if strings.Contains(strings.ToLower(e.Message), "already protected") {
				return goerr.Wrap(types.ErrAlreadyExists, "branch protection rule already exists",
					goerr.V("repo", repo.FullName()),
					goerr.V("pattern", rule.Pattern),
				)
			}
			messages = append(messages, e.Message)
		}
		return goerr.New("GraphQL returned errors for branch protection rule",
			goerr.V("repo", repo.FullName()),
			goerr.V("pattern", rule.Pattern),
			goerr.V("errors", messages),
		)
	}

	logging.From(ctx).Info("Created branch protection rule",
		slog.Any("repo", repo),
		slog.String("pattern", rule.Pattern),
		slog.String("id", resp.Data.CreateBranchProtectionRule.BranchProtectionRule.ID),
	)
	return nil
}
