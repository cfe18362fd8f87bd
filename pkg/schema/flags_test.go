package schema

import (
	"slices"
	"testing"

	"github.com/sai-challenger/sai-attrgen/pkg/catalog"
)

var flagOrder = []Flag{FlagMandatoryOnCreate, FlagCreateOnly, FlagCreateAndSet, FlagReadOnly, FlagKey}

func TestExtractFlags_NoneSet(t *testing.T) {
	flags := ExtractFlags(&catalog.AttrMetadata{})
	if flags == nil {
		t.Fatal("ExtractFlags returned nil, want empty slice")
	}
	if len(flags) != 0 {
		t.Errorf("flags = %v, want empty", flags)
	}
}

func TestExtractFlags_AllSet(t *testing.T) {
	attr := &catalog.AttrMetadata{
		MandatoryOnCreate: true,
		CreateOnly:        true,
		CreateAndSet:      true,
		ReadOnly:          true,
		Key:               true,
	}
	if got := ExtractFlags(attr); !slices.Equal(got, flagOrder) {
		t.Errorf("flags = %v, want %v", got, flagOrder)
	}
}

// Every combination yields the ordered subsequence of the set flags.
func TestExtractFlags_AllCombinations(t *testing.T) {
	for mask := range 1 << len(flagOrder) {
		attr := &catalog.AttrMetadata{
			MandatoryOnCreate: mask&1 != 0,
			CreateOnly:        mask&2 != 0,
			CreateAndSet:      mask&4 != 0,
			ReadOnly:          mask&8 != 0,
			Key:               mask&16 != 0,
		}

		var want []Flag
		for i, f := range flagOrder {
			if mask&(1<<i) != 0 {
				want = append(want, f)
			}
		}

		got := ExtractFlags(attr)
		if len(got) != len(want) || (len(want) > 0 && !slices.Equal(got, want)) {
			t.Errorf("mask %05b: flags = %v, want %v", mask, got, want)
		}
	}
}

func TestExtractFlags_Tokens(t *testing.T) {
	want := []string{"MANDATORY_ON_CREATE", "CREATE_ONLY", "CREATE_AND_SET", "READ_ONLY", "KEY"}
	for i, f := range flagOrder {
		if string(f) != want[i] {
			t.Errorf("flag %d = %q, want %q", i, f, want[i])
		}
	}
}
