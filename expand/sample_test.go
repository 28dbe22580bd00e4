package expand

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestTruncateAtDelimiter(t *testing.T) {
	canon := TruncateAtDelimiter(".")
	expect.EQ(t, canon("WT_R1.mLb.clN_peak_3"), "WT_R1")
	expect.EQ(t, canon("WT_R1_peak_7"), "WT_R1")
	expect.EQ(t, canon("plainsample"), "plainsample")
	expect.EQ(t, canon(".leading"), "")

	dash := TruncateAtDelimiter("-")
	expect.EQ(t, dash("KO-rep1.bed"), "KO")
	expect.EQ(t, dash("KO_rep1.bed"), "KO_rep1")
}

func TestDecodeSamples(t *testing.T) {
	canon := TruncateAtDelimiter(".")
	var empties []int
	set := decodeSamples("a.p1,b.p2,a.p9,,c", canon, func(i int) { empties = append(empties, i) })
	expect.EQ(t, sortedNames(set), []string{"a", "b", "c"})
	expect.EQ(t, empties, []int{3})

	// A canonicalizer yielding "" marks the token unusable, same as an
	// empty token.
	empties = nil
	set = decodeSamples(".x,ok.y", canon, func(i int) { empties = append(empties, i) })
	expect.EQ(t, sortedNames(set), []string{"ok"})
	expect.EQ(t, empties, []int{0})
}
