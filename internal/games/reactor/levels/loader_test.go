package levels_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-reactor/internal/games/reactor/core"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/levels"
)

func known(id string) bool {
	switch id {
	case "missile", "laser", "fire", "heal":
		return true
	}
	return false
}

func TestCampaignLoads(t *testing.T) {
	all, err := levels.Campaign().LoadAll()
	require.NoError(t, err)
	require.Len(t, all, 5)

	for i, l := range all {
		assert.NoError(t, l.Validate(known), l.ID)
		assert.NotEmpty(t, l.Name)
		if i > 0 {
			assert.Less(t, all[i-1].ID, l.ID, "sorted by id")
		}
	}
	assert.Equal(t, "01", all[0].ID)
	assert.Equal(t, core.LinearReveal{Start: 1, PerRound: 1}, all[0].Reveal)
}

func TestSegmentsBecomeOneScript(t *testing.T) {
	l, err := levels.Campaign().LoadByID("03")
	require.NoError(t, err)

	assert.Equal(t, []string{"fire", "laser", "fire", "missile", "heal", "missile", "missile"}, l.Script)
	assert.Equal(t, core.SegmentedReveal{Start: 1, Scaling: 4, Finish: 2, PerRound: 1}, l.Reveal)

	cl := l.Core()
	cl.Script[0] = "changed"
	assert.Equal(t, "fire", l.Script[0], "Core copies the script")
}

func TestDirLoaderSkipsOtherFiles(t *testing.T) {
	all, err := levels.Dir("testdata/custom").LoadAll()
	require.NoError(t, err)
	require.Len(t, all, 1)

	l := all[0]
	assert.Equal(t, "skirmish", l.ID)
	assert.Equal(t, "Enemy", l.EnemyName)
	assert.Equal(t, 1.0, l.Power)
	assert.Equal(t, 3, l.Reveal.Limit(0), "no reveal block exposes the whole script")
}

func TestLoadByIDMissing(t *testing.T) {
	_, err := levels.Campaign().LoadByID("99")
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"missing id":     "name: x\nenemy: {hull: 1, script: [missile]}\n",
		"no hull":        "id: a\nenemy: {script: [missile]}\n",
		"no script":      "id: a\nenemy: {hull: 5}\n",
		"both forms":     "id: a\nenemy: {hull: 5, script: [missile], segments: {start: [laser]}}\n",
		"empty segments": "id: a\nenemy: {hull: 5, segments: {per_round: 1}}\n",
		"bad yaml":       "id: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := levels.ParseYAML([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestInvalidFileFailsLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"lv/a.yaml": {Data: []byte("id: a\nenemy: {hull: 5, script: [missile]}\n")},
		"lv/b.yaml": {Data: []byte("id: b\nenemy: {hull: 5}\n")},
	}
	_, err := levels.NewLoader(fsys, "lv").LoadAll()
	assert.Error(t, err)
}

func TestDuplicateIDs(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("id: x\nenemy: {hull: 5, script: [missile]}\n")},
		"b.yml":  {Data: []byte("id: x\nenemy: {hull: 5, script: [laser]}\n")},
	}
	_, err := levels.NewLoader(fsys, ".").LoadAll()
	assert.ErrorContains(t, err, "duplicate")
}

func TestValidateUnknownAction(t *testing.T) {
	l := levels.Level{ID: "x", Script: []string{"missile", "plasma"}}
	assert.ErrorContains(t, l.Validate(known), `script[1]: unknown action "plasma"`)
}
