package rbac

import (
	"testing"

	"academy-apply-backend/models"

	"github.com/stretchr/testify/require"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/applications/{id}/evaluation [post]")
		require.Nil(t, err)
		require.Equal(t, POST, method)
		r1 := pathToRegex(path)

		validUri := "/api/v1/applications/123-321/evaluation"
		isMatch := r1.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri := "/api/v1/applications/evaluation"
		isMatch = r1.MatchString(invalidUri)
		require.Equal(t, false, isMatch)

		path, method, err = parseSwaggerPattern("/api/v1/applications/{id}/jury/{juror_id} [delete]")
		require.Nil(t, err)
		require.Equal(t, DELETE, method)
		r2 := pathToRegex(path)

		validUri = "/api/v1/applications/123-321/jury/qwe-ewr123-wr-12"
		isMatch = r2.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri = "/api/v1/applications/we-ewr123-wr-12/jury"
		isMatch = r2.MatchString(invalidUri)
		require.Equal(t, false, isMatch)
	})

	t.Run(`role gates`, func(t *testing.T) {
		NewHandler()

		handler, found := Instance.GetRuleFunc("POST", "/api/v1/applications")
		require.True(t, found)
		require.True(t, handler("u1", models.CandidateRole, "/api/v1/applications"))
		require.False(t, handler("u1", models.JuryRole, "/api/v1/applications"))

		handler, found = Instance.GetRuleFunc("POST", "/api/v1/applications/abc-123/evaluation")
		require.True(t, found)
		require.True(t, handler("u1", models.JuryRole, "/api/v1/applications/abc-123/evaluation"))
		require.False(t, handler("u1", models.CandidateRole, "/api/v1/applications/abc-123/evaluation"))

		handler, found = Instance.GetRuleFunc("DELETE", "/api/v1/applications/abc-123")
		require.True(t, found)
		require.True(t, handler("u1", models.AdminRole, "/api/v1/applications/abc-123"))
		require.True(t, handler("u1", models.ManagerRole, "/api/v1/applications/abc-123"))
		require.False(t, handler("u1", models.JuryRole, "/api/v1/applications/abc-123"))

		handler, found = Instance.GetRuleFunc("PUT", "/api/v1/applications/abc-123/status")
		require.True(t, found)
		require.True(t, handler("u1", models.JuryRole, "/api/v1/applications/abc-123/status"))
		require.True(t, handler("u1", models.ManagerRole, "/api/v1/applications/abc-123/status"))
		require.False(t, handler("u1", models.CandidateRole, "/api/v1/applications/abc-123/status"))
	})
}
