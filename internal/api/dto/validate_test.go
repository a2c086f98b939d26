package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ficmh/techfest-api/pkg/util"
)

func TestValidateAcceptsGoodPayloads(t *testing.T) {
	assert.NoError(t, Validate(AdminLoginRequest{Email: "a@x.com", Password: "pw"}))
	assert.NoError(t, Validate(AddAdminRequest{Username: "op", Email: "b@x.com", Password: "password1"}))
	assert.NoError(t, Validate(SponsorRequest{Name: "acme", Tier: "gold"}))
	assert.NoError(t, Validate(TeamMemberRequest{Name: "n", Position: "lead", Club: "ficmh"}))
}

func TestValidateRejectsBadPayloads(t *testing.T) {
	cases := map[string]any{
		"malformed email":    AdminLoginRequest{Email: "not-an-email", Password: "pw"},
		"missing password":   AdminLoginRequest{Email: "a@x.com"},
		"short password":     AddAdminRequest{Username: "op", Email: "b@x.com", Password: "short"},
		"unknown tier":       SponsorRequest{Name: "acme", Tier: "bronze"},
		"unknown club":       TeamMemberRequest{Name: "n", Position: "lead", Club: "chess"},
		"bad launch url":     PublicationRequest{Title: "t", Kind: "article", ContentURL: "://nope"},
		"unknown media kind": PublicationRequest{Title: "t", Kind: "video"},
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			err := Validate(payload)
			var de *apperrors.DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, "VALIDATION_FAILED", de.Code)
			assert.NotEmpty(t, de.Details)
		})
	}
}
