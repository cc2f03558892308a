package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanFileName(t *testing.T) {
	assert.Equal(t, "Who_ What_", CleanFileName("Who: What?"))
	assert.Equal(t, "a_b_c", CleanFileName("a/b\\c"))
	assert.Equal(t, "Trailing", CleanFileName("  Trailing.  "))
	assert.Equal(t, "book", CleanFileName("   "))
}

func TestRestyClientDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/cover.png" {
			_, _ = w.Write([]byte("png-bytes"))
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewRestyClient(0)

	data, err := client.Download(server.URL + "/cover.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	_, err = client.Download(server.URL + "/missing.png")
	assert.Error(t, err)
}
