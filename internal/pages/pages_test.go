package pages

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"awsomemath/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogListsBothCalculators(t *testing.T) {
	got := Catalog()
	require.Len(t, got, 2)
	assert.Equal(t, CalculatorPath, got[0].Path)
	assert.Equal(t, VolumesPath, got[1].Path)

	got[0].Title = "changed"
	assert.Equal(t, "Calculator", Catalog()[0].Title, "Catalog must return a copy")
}

func TestFind(t *testing.T) {
	p, ok := Find(VolumesPath)
	require.True(t, ok)
	assert.Equal(t, "Volumes", p.Title)

	_, ok = Find("/missing")
	assert.False(t, ok)
}

func TestListWritesWelcomeAndPages(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/pages", nil)
	w := testutil.ExecuteRequest(r, http.HandlerFunc(List))

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var body StartPage
	testutil.DecodeJSONBody(t, w.Body, &body)
	assert.Equal(t, Welcome, body.Welcome)
	assert.Len(t, body.Pages, 2)
}
