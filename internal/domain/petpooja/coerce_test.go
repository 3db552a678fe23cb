package petpooja

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagAcceptsStringAndIntegerForms(t *testing.T) {
	cases := map[string]bool{
		`"1"`:     true,
		`1`:       true,
		`true`:    true,
		`"true"`:  true,
		`"0"`:     false,
		`0`:       false,
		`false`:   false,
		`""`:      false,
		`null`:    false,
		`"maybe"`: false,
		`{}`:      false,
	}
	for raw, want := range cases {
		var f Flag
		require.NoError(t, json.Unmarshal([]byte(raw), &f), raw)
		assert.Equal(t, want, bool(f), raw)
	}
}

func TestMarkerOnlyAcceptsOne(t *testing.T) {
	cases := map[string]bool{
		`"1"`:    true,
		`1`:      true,
		`" 1 "`:  true,
		`"0"`:    false,
		`true`:   false,
		`"true"`: false,
		`"yes"`:  false,
		`null`:   false,
	}
	for raw, want := range cases {
		var m Marker
		require.NoError(t, json.Unmarshal([]byte(raw), &m), raw)
		assert.Equal(t, want, bool(m), raw)
	}
}

func TestAmountFallsBackToZero(t *testing.T) {
	cases := map[string]float64{
		`"199.50"`: 199.5,
		`199.5`:    199.5,
		`" 20 "`:   20,
		`""`:       0,
		`"abc"`:    0,
		`"NaN"`:    0,
		`null`:     0,
		`[]`:       0,
	}
	for raw, want := range cases {
		var a Amount
		require.NoError(t, json.Unmarshal([]byte(raw), &a), raw)
		assert.Equal(t, want, float64(a), raw)
	}
}

func TestRankFallsBackToDefaultRank(t *testing.T) {
	cases := map[string]int{
		`"16"`:  16,
		`3`:     3,
		`"2.0"`: 2,
		`""`:    DefaultRank,
		`"x"`:   DefaultRank,
		`null`:  DefaultRank,
	}
	for raw, want := range cases {
		var r Rank
		require.NoError(t, json.Unmarshal([]byte(raw), &r), raw)
		assert.Equal(t, want, int(r), raw)
	}
}

func TestCountFallsBackToZero(t *testing.T) {
	var c Count
	require.NoError(t, json.Unmarshal([]byte(`"x"`), &c))
	assert.Equal(t, 0, int(c))

	require.NoError(t, json.Unmarshal([]byte(`"4"`), &c))
	assert.Equal(t, 4, int(c))
}

func TestIDAcceptsNumbers(t *testing.T) {
	var id ID
	require.NoError(t, json.Unmarshal([]byte(`42`), &id))
	assert.Equal(t, ID("42"), id)
	assert.False(t, id.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`"0"`), &id))
	assert.True(t, id.IsZero())
}

func TestTextIsTrimmedAndUnescaped(t *testing.T) {
	var txt Text
	require.NoError(t, json.Unmarshal([]byte(`"  Fish &amp; Chips "`), &txt))
	assert.Equal(t, "Fish & Chips", txt.String())

	// decomposed e + combining acute becomes the composed form
	require.NoError(t, json.Unmarshal([]byte(`"Cafe\u0301"`), &txt))
	assert.Equal(t, "Caf\u00e9", txt.String())
}

func TestListAcceptsArrayOrCommaString(t *testing.T) {
	var l List
	require.NoError(t, json.Unmarshal([]byte(`"1, 2,,3"`), &l))
	assert.Equal(t, List{"1", "2", "3"}, l)

	require.NoError(t, json.Unmarshal([]byte(`["spicy", 7, ""]`), &l))
	assert.Equal(t, List{"spicy", "7"}, l)

	require.NoError(t, json.Unmarshal([]byte(`null`), &l))
	assert.Empty(t, l)
}

func TestMenuPayloadDecodesMixedEncodings(t *testing.T) {
	raw := `{
		"success": "1",
		"restaurants": [{"restaurantid": "R1", "active": 1, "details": {"restaurantname": "Cafe", "latitude": "12.9", "minimum_prep_time": "abc"}}],
		"ordertypes": [{"ordertypeid": 1, "ordertype": "Delivery"}],
		"categories": [{"categoryid": "C1", "active": "1", "categoryrank": "", "parent_category_id": "0", "categoryname": "Pizza"}],
		"items": [{"itemid": "I1", "item_categoryid": "C1", "price": "199.50", "active": "1", "itemallowaddon": 0, "item_tax": "1983,1984", "item_tags": ["spicy"], "nutrition": {"kcal": 300},
			"variation": [{"id": "V1", "variationid": "M1", "name": "Half", "groupname": "Size", "price": "99", "active": "1"}],
			"addon": [{"addon_group_id": "G1", "addon_item_selection_min": "0", "addon_item_selection_max": "2"}]}]
	}`
	var p MenuPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.True(t, bool(p.Success))
	require.Len(t, p.Restaurants, 1)
	assert.True(t, bool(p.Restaurants[0].Active))
	assert.Equal(t, 12.9, float64(p.Restaurants[0].Details.Latitude))
	assert.Equal(t, 0, int(p.Restaurants[0].Details.MinimumPrepTime))
	assert.Equal(t, ID("1"), p.OrderTypes[0].ID)
	assert.Equal(t, DefaultRank, int(p.Categories[0].Rank))
	assert.True(t, p.Categories[0].ParentCategoryID.IsZero())

	item := p.Items[0]
	assert.Equal(t, 199.5, float64(item.Price))
	assert.False(t, bool(item.AllowAddon))
	assert.Equal(t, List{"1983", "1984"}, item.Taxes)
	assert.Equal(t, List{"spicy"}, item.Tags)
	assert.JSONEq(t, `{"kcal": 300}`, string(item.Nutrition))
	assert.Equal(t, 2, int(item.Addons[0].SelectionMax))
	assert.Equal(t, "Half", item.Variations[0].Name.String())
}

func TestSaveOrderResponseAccepted(t *testing.T) {
	var ok SaveOrderResponse
	require.NoError(t, json.Unmarshal([]byte(`{"success":"1","orderID":"11","message":"Your order is saved."}`), &ok))
	assert.True(t, ok.Accepted())

	var missingID SaveOrderResponse
	require.NoError(t, json.Unmarshal([]byte(`{"success":"1","orderID":""}`), &missingID))
	assert.False(t, missingID.Accepted())

	var rejected SaveOrderResponse
	require.NoError(t, json.Unmarshal([]byte(`{"success":"0","message":"invalid item"}`), &rejected))
	assert.False(t, rejected.Accepted())
}
