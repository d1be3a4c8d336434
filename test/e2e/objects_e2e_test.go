package e2e_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func harbourPayload() map[string]any {
	return map[string]any{
		"NElongitude": -3.1,
		"NElatitude":  12.5,
		"SWlongitude": -5,
		"SWlatitude":  10,
	}
}

func TestE2E_Objects_Lifecycle(t *testing.T) {
	app := setupTestApp(t, false)
	defer app.cleanup(t)

	_, token := app.token(t)

	var objectID string

	t.Run("create object with bounds", func(t *testing.T) {
		resp, err := app.post("/objects", map[string]any{
			"title":  "Harbour",
			"bounds": harbourPayload(),
		}, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var objResp map[string]any
		parseResponse(t, resp, &objResp)

		objectID = objResp["id"].(string)
		assert.Equal(t, 1.0, objResp["version"])
		assert.Equal(t, harbourPayload()["NElatitude"], objResp["bounds"].(map[string]any)["NElatitude"])
	})

	t.Run("get object reads storage columns", func(t *testing.T) {
		resp, err := app.get("/objects/"+objectID, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var objResp map[string]any
		parseResponse(t, resp, &objResp)

		bounds := objResp["bounds"].(map[string]any)
		assert.Equal(t, -3.1, bounds["NElongitude"])
		assert.Equal(t, 12.5, bounds["NElatitude"])
		assert.Equal(t, -5.0, bounds["SWlongitude"])
		assert.Equal(t, 10.0, bounds["SWlatitude"])
	})

	t.Run("bounds are served from the packed cache", func(t *testing.T) {
		key := "objects:" + objectID + ":area"
		assert.Equal(t, "[12.5,-3.1]", app.Redis.HGet(key, "value"))
		assert.Equal(t, "[10,-5]", app.Redis.HGet(key, "value2"))

		resp, err := app.get("/objects/"+objectID+"/bounds", authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var boundsResp map[string]any
		parseResponse(t, resp, &boundsResp)
		assert.Equal(t, 12.5, boundsResp["bounds"].(map[string]any)["NElatitude"])
	})

	t.Run("list objects returns grid payload", func(t *testing.T) {
		resp, err := app.get("/objects", authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var listResp map[string]any
		parseResponse(t, resp, &listResp)

		objects := listResp["objects"].([]any)
		require.Len(t, objects, 1)
		assert.Equal(t, -5.0, objects[0].(map[string]any)["bounds"].(map[string]any)["SWlongitude"])
	})

	t.Run("update with the same bounds keeps the version", func(t *testing.T) {
		resp, err := app.put("/objects/"+objectID, map[string]any{"bounds": harbourPayload()}, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var objResp map[string]any
		parseResponse(t, resp, &objResp)
		assert.Equal(t, 1.0, objResp["version"])
	})

	t.Run("update with new bounds creates a version", func(t *testing.T) {
		moved := harbourPayload()
		moved["NElatitude"] = 13.25

		resp, err := app.put("/objects/"+objectID, map[string]any{"bounds": moved}, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var objResp map[string]any
		parseResponse(t, resp, &objResp)
		assert.Equal(t, 2.0, objResp["version"])
	})

	t.Run("versions show previews and rebuild bounds", func(t *testing.T) {
		resp, err := app.get("/objects/"+objectID+"/versions", authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var listResp map[string]any
		parseResponse(t, resp, &listResp)

		versions := listResp["versions"].([]any)
		require.Len(t, versions, 2)
		assert.Equal(t, "-3.1,13.25 -5,10", versions[0].(map[string]any)["preview"])
		assert.Equal(t, "-3.1,12.5 -5,10", versions[1].(map[string]any)["preview"])

		resp, err = app.get("/objects/"+objectID+"/versions/1", authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var detail map[string]any
		parseResponse(t, resp, &detail)
		assert.Equal(t, 12.5, detail["bounds"].(map[string]any)["NElatitude"])
	})

	t.Run("other users cannot read the object", func(t *testing.T) {
		_, otherToken := app.token(t)

		resp, err := app.get("/objects/"+objectID, authHeader(otherToken))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("delete object", func(t *testing.T) {
		resp, err := app.delete("/objects/"+objectID, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()

		assert.False(t, app.Redis.Exists("objects:"+objectID+":area"))

		resp, err = app.get("/objects/"+objectID, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestE2E_Objects_ZeroCoordinates(t *testing.T) {
	app := setupTestApp(t, false)
	defer app.cleanup(t)

	_, token := app.token(t)

	resp, err := app.post("/objects", map[string]any{
		"title": "Equator",
		"bounds": map[string]any{
			"NElongitude": 5,
			"NElatitude":  0,
			"SWlongitude": 1,
			"SWlatitude":  -2,
		},
	}, authHeader(token))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	parseResponse(t, resp, &created)
	assert.NotNil(t, created["bounds"], "editor input accepts zero")

	resp, err = app.get("/objects/"+created["id"].(string), authHeader(token))
	require.NoError(t, err)

	var stored map[string]any
	parseResponse(t, resp, &stored)
	assert.Nil(t, stored["bounds"], "a zero column reads back as an empty field")
}

func TestE2E_Objects_MandatoryField(t *testing.T) {
	app := setupTestApp(t, true)
	defer app.cleanup(t)

	_, token := app.token(t)

	resp, err := app.post("/objects", map[string]any{"title": "No bounds"}, authHeader(token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp map[string]any
	parseResponse(t, resp, &errResp)
	assert.Equal(t, "VALIDATION_ERROR", errResp["code"])
	assert.Equal(t, "Empty mandatory field [ area ]", errResp["error"])
}

func TestE2E_Objects_CSV(t *testing.T) {
	app := setupTestApp(t, true)
	defer app.cleanup(t)

	_, token := app.token(t)

	t.Run("import", func(t *testing.T) {
		body := "title,area\n" +
			"Harbour,\"-3.1,12.5|-5,10\"\n" +
			"Spaced,\" 7 , 8 | 1 , 2 \"\n" +
			"Broken,\"abc|def\"\n" +
			"Missing,\n"

		headers := authHeader(token)
		headers["Content-Type"] = "text/csv"
		resp, err := app.request(http.MethodPost, "/imports", strings.NewReader(body), headers)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var importResp struct {
			Imported    int `json:"imported"`
			EmptyBounds int `json:"empty_bounds"`
			Rejected    []struct {
				Line    int    `json:"line"`
				Message string `json:"message"`
			} `json:"rejected"`
		}
		parseResponse(t, resp, &importResp)

		assert.Equal(t, 2, importResp.Imported)
		assert.Equal(t, 1, importResp.EmptyBounds)
		require.Len(t, importResp.Rejected, 2)
		assert.Equal(t, 4, importResp.Rejected[0].Line)
		assert.Equal(t, 5, importResp.Rejected[1].Line)
	})

	t.Run("download", func(t *testing.T) {
		resp, err := app.get("/exports/objects.csv", authHeader(token))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)

		values := map[string]string{}
		for _, rec := range records[1:] {
			values[rec[1]] = rec[2]
		}
		assert.Equal(t, "-3.1,12.5|-5,10", values["Harbour"])
		assert.Equal(t, "7,8|1,2", values["Spaced"])
	})

	t.Run("export to object storage", func(t *testing.T) {
		resp, err := app.post("/exports", nil, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var exportResp map[string]any
		parseResponse(t, resp, &exportResp)

		key := exportResp["key"].(string)
		assert.Equal(t, 2.0, exportResp["rows"])
		assert.Contains(t, exportResp["signed_url"], "signed=true")
		assert.Contains(t, string(app.Storage.get(key)), "Harbour")
	})
}

func TestE2E_Health(t *testing.T) {
	app := setupTestApp(t, false)
	defer app.cleanup(t)

	resp, err := app.httpClient.Get(app.BaseURL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, app.Pool.Ping(context.Background()))
}
