package matscholar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	matscholar "github.com/materialsintelligence/matscholar-go/pkg/matscholar-sdk"
)

func TestProcessText(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		writeEnvelope(w, http.StatusOK, `{
			"valid_response": true,
			"response": {"processed_text": [["LiCoO2", "is", "a", "cathode"], ["it", "cycles", "well"]]}
		}`)
	}))

	sentences, err := c.ProcessText(context.Background(), "LiCoO2 is a cathode. It cycles well.")
	require.NoError(t, err)

	assert.Equal(t, "/embeddings/preprocess/LiCoO2 is a cathode. It cycles well.", gotPath)
	assert.Equal(t, []string{"false"}, gotQuery["exclude_punct"])
	assert.Equal(t, []string{"false"}, gotQuery["phrases"])

	require.Len(t, sentences, 2)
	assert.Equal(t, []string{"LiCoO2", "is", "a", "cathode"}, sentences[0])
}

func TestProcessText_Options(t *testing.T) {
	var gotQuery map[string][]string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		writeEnvelope(w, http.StatusOK, `{"valid_response": true, "response": {"processed_text": []}}`)
	}))

	_, err := c.ProcessText(context.Background(), "some text",
		matscholar.WithExcludePunct(),
		matscholar.WithPhrases(),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"true"}, gotQuery["exclude_punct"])
	assert.Equal(t, []string{"true"}, gotQuery["phrases"])
}

const embeddingsEnvelope = `{
	"valid_response": true,
	"response": {
		"original_wordphrases": ["iron"],
		"processed_wordphrases": [["iron"]],
		"embeddings": [[0.1, 0.2, 0.3]]
	}
}`

// A single wordphrase rides in the path of a GET request.
func TestGetEmbedding_Single(t *testing.T) {
	var gotMethod, gotPath string
	var gotQuery map[string][]string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		writeEnvelope(w, http.StatusOK, embeddingsEnvelope)
	}))

	res, err := c.GetEmbedding(context.Background(), "iron")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/embeddings/iron", gotPath)
	assert.Equal(t, []string{"true"}, gotQuery["ignore_missing"])
	assert.Equal(t, [][]float64{{0.1, 0.2, 0.3}}, res.Embeddings)
}

// A batch of wordphrases is posted as a JSON body instead.
func TestGetEmbeddings_Batch(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody struct {
		Wordphrases   []string `json:"wordphrases"`
		IgnoreMissing bool     `json:"ignore_missing"`
	}
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeEnvelope(w, http.StatusOK, `{
			"valid_response": true,
			"response": {
				"original_wordphrases": ["iron", "oxide"],
				"processed_wordphrases": [["iron"], ["oxide"]],
				"embeddings": [[0.1, 0.2], [0.3, 0.4]]
			}
		}`)
	}))

	res, err := c.GetEmbeddings(context.Background(), []string{"iron", "oxide"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/embeddings", gotPath)
	assert.Equal(t, []string{"iron", "oxide"}, gotBody.Wordphrases)
	assert.True(t, gotBody.IgnoreMissing)
	assert.Equal(t, []string{"iron", "oxide"}, res.OriginalWordphrases)
	require.Len(t, res.Embeddings, 2)
}

func TestGetEmbeddings_GuessMissing(t *testing.T) {
	var gotBody map[string]any
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeEnvelope(w, http.StatusOK, embeddingsEnvelope)
	}))

	_, err := c.GetEmbeddings(context.Background(), []string{"unobtainium"}, matscholar.WithGuessMissing())
	require.NoError(t, err)
	assert.Equal(t, false, gotBody["ignore_missing"])
}
