package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/sai-challenger/sai-attrgen/pkg/catalog"
	"github.com/sai-challenger/sai-attrgen/pkg/schema/mocks"
)

func TestResolveObjects(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name    string
		indices []int
		want    []string
	}{
		{"empty", nil, []string{}},
		{"single", []int{1}, []string{"SAI_OBJECT_TYPE_PORT"}},
		{"order kept", []int{3, 1}, []string{"SAI_OBJECT_TYPE_ACL_TABLE", "SAI_OBJECT_TYPE_PORT"}},
		{"duplicates kept", []int{1, 3, 1}, []string{"SAI_OBJECT_TYPE_PORT", "SAI_OBJECT_TYPE_ACL_TABLE", "SAI_OBJECT_TYPE_PORT"}},
		{"sentinel", []int{0}, []string{"SAI_OBJECT_TYPE_NULL"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveObjects(tt.indices, c)
			if err != nil {
				t.Fatalf("ResolveObjects() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestResolveObjects_OutOfRange(t *testing.T) {
	c := testCatalog(t)

	for _, idx := range []int{-1, 4, 100} {
		_, err := ResolveObjects([]int{1, idx}, c)
		if err == nil {
			t.Fatalf("index %d: expected error", idx)
		}
		if !catalog.IsIntegrity(err) {
			t.Errorf("index %d: error %v is not an integrity error", idx, err)
		}
		if !errors.Is(err, catalog.ErrUnknownObjectType) {
			t.Errorf("index %d: error %v does not match ErrUnknownObjectType", idx, err)
		}
	}
}

func TestResolveObjects_StopsAtFirstError(t *testing.T) {
	src := mocks.NewMockSource(t)
	boom := errors.New("boom")
	src.EXPECT().ObjectTypeName(1).Return("SAI_OBJECT_TYPE_PORT", nil).Once()
	src.EXPECT().ObjectTypeName(2).Return("", boom).Once()

	got, err := ResolveObjects([]int{1, 2, 3}, src)
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
	if got != nil {
		t.Errorf("names = %v, want nil", got)
	}
	src.AssertNotCalled(t, "ObjectTypeName", mock.MatchedBy(func(i int) bool { return i == 3 }))
}
