package cmd

import (
	"bytes"
	"strings"
	"testing"

	"famtree/kin/internal/family"
	"famtree/kin/internal/lineage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFamily() []family.Person {
	return []family.Person{
		{ID: 1, Name: "A", Parents: [2]int{0, 0}},
		{ID: 2, Name: "B", Parents: [2]int{1, 0}},
		{ID: 3, Name: "C", Parents: [2]int{1, 2}},
		{ID: 4, Name: "D", Parents: [2]int{3, 99}},
	}
}

func TestPrintBands(t *testing.T) {
	people := sampleFamily()
	r := lineage.NewResolver(lineage.NewSnapshot(people), lineage.DefaultOptions())
	fam := r.Family(3)

	var buf bytes.Buffer
	printBands(&buf, r, fam, lineage.DefaultBandRange)
	out := buf.String()

	assert.Contains(t, out, "Lineage of C (#3)")
	assert.Contains(t, out, "Grandparents (-2)")
	assert.Contains(t, out, "Parents (-1)")
	assert.Contains(t, out, "Self (+0)")
	assert.Contains(t, out, "Children (+1)")
	assert.Contains(t, out, "(parents: C, Invalid)")
	assert.NotContains(t, out, "Great-grand", "empty bands are skipped")
	assert.NotContains(t, out, "not shown")

	// grandparents come before parents
	assert.Less(t, strings.Index(out, "Grandparents"), strings.Index(out, "Parents (-1)"))
}

func TestPrintBands_HiddenNotice(t *testing.T) {
	people := sampleFamily()
	r := lineage.NewResolver(lineage.NewSnapshot(people), lineage.DefaultOptions())

	var buf bytes.Buffer
	printBands(&buf, r, r.Family(4), 1)
	assert.Contains(t, buf.String(), "member")
	assert.Contains(t, buf.String(), "beyond ±1 generations not shown")
}

func TestPrintBands_NoRoot(t *testing.T) {
	r := lineage.NewResolver(lineage.NewSnapshot(nil), lineage.DefaultOptions())
	var buf bytes.Buffer
	printBands(&buf, r, r.Family(1), 3)
	assert.Equal(t, "No family found.\n", buf.String())
}

func TestPrintFlat_TraversalOrder(t *testing.T) {
	people := sampleFamily()
	r := lineage.NewResolver(lineage.NewSnapshot(people), lineage.DefaultOptions())

	var buf bytes.Buffer
	printFlat(&buf, r, r.Family(3))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "[+0] #3")
	assert.Contains(t, lines[1], "[-1] #1")
	assert.Contains(t, lines[2], "[-1] #2")
	assert.Contains(t, lines[3], "[-2] #1")
	assert.Contains(t, lines[4], "[+1] #4")
}

func TestListPeople_ResolvesNames(t *testing.T) {
	listed := listPeople(sampleFamily())
	require.Len(t, listed, 4)
	assert.Equal(t, [2]string{"Unknown", "Unknown"}, listed[0].ParentNames)
	assert.Equal(t, [2]string{"A", "B"}, listed[2].ParentNames)
	assert.Equal(t, [2]string{"C", "Invalid"}, listed[3].ParentNames)

	var buf bytes.Buffer
	printList(&buf, listed)
	assert.Contains(t, buf.String(), "Parent 2: Invalid")
	assert.Contains(t, buf.String(), "4 person(s)")
}

func TestPrintList_Empty(t *testing.T) {
	var buf bytes.Buffer
	printList(&buf, nil)
	assert.Equal(t, "No people in family document.\n", buf.String())
}

func TestPrintClans(t *testing.T) {
	people := append(sampleFamily(), family.Person{ID: 5, Name: "Loner"})
	c := family.NewCollection(people)
	report := lineage.ComputeClans(people)

	var buf bytes.Buffer
	printClans(&buf, report, c, 10)
	out := buf.String()
	assert.Contains(t, out, "People: 5  Clans: 2  Largest: 4")
	assert.Contains(t, out, "Dangling parent refs: 1")
	assert.Contains(t, out, "1. 4 people, earliest #1 A")
	assert.NotContains(t, out, "Loner")
}

func TestPrintClans_TopN(t *testing.T) {
	people := append(sampleFamily(),
		family.Person{ID: 5, Name: "E"},
		family.Person{ID: 6, Name: "F", Parents: [2]int{5, 0}},
	)
	c := family.NewCollection(people)
	report := lineage.ComputeClans(people)

	tests := []struct {
		name     string
		topN     int
		contains []string
		absent   []string
	}{
		{"negative shows none", -1, []string{"... and 2 more"}, []string{"1. 4 people"}},
		{"zero shows none", 0, []string{"... and 2 more"}, []string{"1. 4 people"}},
		{"one shows largest", 1, []string{"1. 4 people", "... and 1 more"}, []string{"2. 2 people"}},
		{"more than available", 5, []string{"1. 4 people", "2. 2 people, earliest #5 E"}, []string{"more"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NotPanics(t, func() { printClans(&buf, report, c, tt.topN) })
			out := buf.String()
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestPrintBands_NegativeRange(t *testing.T) {
	people := sampleFamily()
	r := lineage.NewResolver(lineage.NewSnapshot(people), lineage.DefaultOptions())

	var buf bytes.Buffer
	printBands(&buf, r, r.Family(3), -1)
	out := buf.String()
	assert.Contains(t, out, "Self (+0)")
	assert.Contains(t, out, "4 members beyond ±0 generations not shown")
	assert.NotContains(t, out, "±-1")
}
