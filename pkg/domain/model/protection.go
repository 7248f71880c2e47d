package model

// BackupBranchPattern is protected on every repository regardless of spec.
const BackupBranchPattern = "backup/**"

// BranchProtectionRule is a pattern-scoped protection rule. Field names follow GitHub's createBranchProtectionRule input.
type BranchProtectionRule struct {
	Pattern string

	EnforceAdmins                  bool
	AllowsDeletions                bool
	AllowsForcePushes              bool
	RequiresCommitSignatures       bool
	RequiresConversationResolution bool
	RequiresLinearHistory          bool

	RequiresStatusChecks       bool
	RequiresStrictStatusChecks bool

	RequiresApprovingReviews     bool
	RequiredApprovingReviewCount int
	DismissesStaleReviews        bool
	RestrictsReviewDismissals    bool
}

// DefaultBranchProtection returns the fixed governance policy for the default branch.
func DefaultBranchProtection(branch string) *BranchProtectionRule {
	return &BranchProtectionRule{
		Pattern:                        branch,
		EnforceAdmins:                  true,
		AllowsDeletions:                false,
		AllowsForcePushes:              false,
		RequiresCommitSignatures:       true,
		RequiresConversationResolution: true,
		RequiresLinearHistory:          true,
		RequiresStatusChecks:           true,
		RequiresStrictStatusChecks:     true,
		RequiresApprovingReviews:       true,
		RequiredApprovingReviewCount:   0,
		DismissesStaleReviews:          true,
		RestrictsReviewDismissals:      false,
	}
}

// BackupBranchProtection forbids deletion and force push on backup/** only.
func BackupBranchProtection() *BranchProtectionRule {
	return &BranchProtectionRule{
		Pattern:           BackupBranchPattern,
		AllowsDeletions:   false,
		AllowsForcePushes: false,
	}
}
