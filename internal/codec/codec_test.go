package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/dmitrijs2005/ospassport/internal/common"
	"github.com/dmitrijs2005/ospassport/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taro(t *testing.T) models.Record {
	t.Helper()
	r := models.SetName(models.NewRecord(), "Taro")
	var err error
	r, err = models.ToggleTag(r, models.CategorySensor, 0)
	require.NoError(t, err)
	r, err = models.ToggleTag(r, models.CategorySensor, 2)
	require.NoError(t, err)
	r, err = models.SetMemo(r, models.CategoryCommunication, "likes drawing")
	require.NoError(t, err)
	return r
}

func TestRoundTrip_TaroScenario(t *testing.T) {
	in := taro(t)

	token, err := Encode(in)
	require.NoError(t, err)

	out, err := Decode(token)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(in, out))
	assert.Equal(t, "Taro", out.Name)
	assert.Equal(t, []int{0, 2}, out.Entry(models.CategorySensor).Tags)
	assert.NotNil(t, out.Categories[models.CategoryBattery].Tags)
	assert.Empty(t, out.Categories[models.CategoryBattery].Tags)
	assert.Equal(t, "likes drawing", out.Entry(models.CategoryCommunication).Memo)
	assert.Empty(t, out.Stamps)
}

func TestRoundTrip_Records(t *testing.T) {
	full := models.SetName(models.NewRecord(), "ギフ 太郎 👦🏽")
	full, _ = models.SetMemo(full, models.CategorySensor, "まぶしいのが苦手\n改行 & <tags> \"quotes\" \\ 100%")
	full, _ = models.SetMemo(full, models.CategoryBattery, "Cansa fácil, precisa de soneca")
	full, _ = models.SetMemo(full, models.CategoryCommunication, "  line sep, emoji 🎨🗣️")
	for _, c := range models.Categories {
		for i := range models.OptionKeys(c) {
			full, _ = models.ToggleTag(full, c, i)
		}
	}
	for i := 0; i < 15; i++ {
		full, _ = models.AddStamp(full, models.StampEmojis[i%4], fmt.Sprintf("2026/10/%d", i+1), models.NewStampID(), 15)
	}
	require.Len(t, full.Stamps, 15)

	tests := []struct {
		name string
		rec  models.Record
	}{
		{name: "empty", rec: models.NewRecord()},
		{name: "taro", rec: taro(t)},
		{name: "multibyte and max stamps", rec: full},
		{name: "whitespace name", rec: models.SetName(models.NewRecord(), "  ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := Encode(tt.rec)
			require.NoError(t, err)

			got, err := Decode(token)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.rec, got))
		})
	}
}

func TestEncode_TokenIsURLSafe(t *testing.T) {
	r := models.SetName(models.NewRecord(), "??>>//++ ~~~ テスト")
	token, err := Encode(r)
	require.NoError(t, err)

	assert.Equal(t, token, url.QueryEscape(token))
	assert.NotContains(t, token, "=")
}

func TestMarshal_CanonicalShape(t *testing.T) {
	data, err := Marshal(taro(t))
	require.NoError(t, err)

	assert.Equal(t,
		`{"name":"Taro","sensor":{"tags":[0,2],"memo":""},"battery":{"tags":[],"memo":""},`+
			`"communication":{"tags":[],"memo":"likes drawing"},"stamps":[]}`,
		string(data))
}

func TestDecode_Malformed(t *testing.T) {
	missingName := base64.RawURLEncoding.EncodeToString([]byte(
		`{"sensor":{"tags":[],"memo":""},"battery":{"tags":[],"memo":""},"communication":{"tags":[],"memo":""},"stamps":[]}`))
	missingCategory := base64.RawURLEncoding.EncodeToString([]byte(
		`{"name":"x","sensor":{"tags":[],"memo":""},"communication":{"tags":[],"memo":""},"stamps":[]}`))
	missingStamps := base64.RawURLEncoding.EncodeToString([]byte(
		`{"name":"x","sensor":{"tags":[],"memo":""},"battery":{"tags":[],"memo":""},"communication":{"tags":[],"memo":""}}`))
	wrongType := base64.RawURLEncoding.EncodeToString([]byte(
		`{"name":1,"sensor":{"tags":[],"memo":""},"battery":{"tags":[],"memo":""},"communication":{"tags":[],"memo":""},"stamps":[]}`))
	truncated, err := Encode(taro(t))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"not a token", "not-a-valid-token"},
		{"empty", ""},
		{"blank", "   "},
		{"not json", base64.RawURLEncoding.EncodeToString([]byte("hello"))},
		{"json array", base64.RawURLEncoding.EncodeToString([]byte("[]"))},
		{"missing name", missingName},
		{"missing category", missingCategory},
		{"missing stamps", missingStamps},
		{"wrong type", wrongType},
		{"truncated", truncated[:len(truncated)/2]},
		{"bad legacy escape", base64.StdEncoding.EncodeToString([]byte("%7B%ZZ"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.token)
			require.Error(t, err)
			require.ErrorIs(t, err, common.ErrDecode)

			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.NotEmpty(t, de.Reason)
			assert.Empty(t, cmp.Diff(models.Record{}, got))
		})
	}
}

func TestDecode_LegacyToken(t *testing.T) {
	legacyJSON := `{"name":"レオ","sensor":{"tags":[2,0],"memo":"まぶしい"},` +
		`"battery":{"tags":[],"memo":""},"communication":{"tags":[1],"memo":"gestures a lot"},` +
		`"stamps":[{"date":"2025/12/1","emoji":"🌟"}]}`
	token := base64.StdEncoding.EncodeToString([]byte(url.PathEscape(legacyJSON)))

	got, err := Decode(token)
	require.NoError(t, err)

	assert.Equal(t, "レオ", got.Name)
	assert.Equal(t, []int{0, 2}, got.Entry(models.CategorySensor).Tags)
	assert.Equal(t, "まぶしい", got.Entry(models.CategorySensor).Memo)
	assert.Equal(t, []int{1}, got.Entry(models.CategoryCommunication).Tags)
	require.Len(t, got.Stamps, 1)
	assert.Equal(t, models.Stamp{Date: "2025/12/1", Emoji: "🌟"}, got.Stamps[0])
}

func TestDecode_ToleratesPaddingAndFormDecoding(t *testing.T) {
	in := models.SetName(models.NewRecord(), "Lucas ~ João??")
	data, err := Marshal(in)
	require.NoError(t, err)

	padded := base64.StdEncoding.EncodeToString(data)
	got, err := Decode(padded)
	require.NoError(t, err)
	assert.Equal(t, in.Name, got.Name)

	// '+' turned into ' ' by form decoding
	got, err = Decode(strings.ReplaceAll(padded, "+", " ") + "\n")
	require.NoError(t, err)
	assert.Equal(t, in.Name, got.Name)
}

func TestUnmarshal_KeepsStaleIndicesAndDedupes(t *testing.T) {
	got, err := Unmarshal([]byte(`{"name":"","sensor":{"tags":[7,1,1],"memo":""},` +
		`"battery":{"tags":null,"memo":""},"communication":{"tags":[],"memo":""},"stamps":[],"extra":true}`))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 7}, got.Entry(models.CategorySensor).Tags)
	assert.Equal(t, []int{}, got.Categories[models.CategoryBattery].Tags)
}

func TestMarshal_RejectsInvalidUTF8(t *testing.T) {
	r := models.SetName(models.NewRecord(), "Taro\xff")

	_, err := Marshal(r)
	require.ErrorIs(t, err, common.ErrInvalidText)

	_, err = Encode(r)
	require.ErrorIs(t, err, common.ErrInvalidText)

	stamped := models.NewRecord()
	stamped.Stamps = []models.Stamp{{Date: "2026/10/19\xfe", Emoji: "🌟", ID: "1"}}
	_, err = Encode(stamped)
	require.ErrorIs(t, err, common.ErrInvalidText)
}
