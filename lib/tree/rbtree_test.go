package tree

import (
	"math"
	randv2 "math/rand/v2"
	"sort"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

type rbCheckData struct {
	color RBColor
	key   uint64
}

func rbtreeColors(tree Tree[uint64, uint64]) []rbCheckData {
	res := make([]rbCheckData, 0, tree.Len())
	tree.Walk(InOrder, func(n Node[uint64, uint64]) bool {
		res = append(res, rbCheckData{color: n.(RBNode[uint64, uint64]).Color(), key: n.Key()})
		return true
	})
	return res
}

func requireRBValid(t *testing.T, tree Tree[uint64, uint64]) {
	t.Helper()
	require.NoError(t, RedViolationValidate[uint64, uint64](tree))
	require.NoError(t, BlackViolationValidate[uint64, uint64](tree))
}

func TestRbtreeLeftAndRightRotate_Pred(t *testing.T) {
	tree := NewRBTree[uint64, uint64](WithRemoveBorrowPred[uint64, uint64]())

	steps := []struct {
		key      uint64
		expected []rbCheckData
	}{
		{52, []rbCheckData{{Black, 52}}},
		{47, []rbCheckData{{Red, 47}, {Black, 52}}},
		{3, []rbCheckData{{Red, 3}, {Black, 47}, {Red, 52}}},
		{35, []rbCheckData{{Black, 3}, {Red, 35}, {Black, 47}, {Black, 52}}},
		{24, []rbCheckData{{Red, 3}, {Black, 24}, {Red, 35}, {Black, 47}, {Black, 52}}},
	}
	for _, step := range steps {
		_, err := tree.Insert(step.key, 1)
		require.NoError(t, err)
		require.Equal(t, step.expected, rbtreeColors(tree))
		requireRBValid(t, tree)
	}

	// remove

	steps = []struct {
		key      uint64
		expected []rbCheckData
	}{
		{24, []rbCheckData{{Black, 3}, {Red, 35}, {Black, 47}, {Black, 52}}},
		{47, []rbCheckData{{Black, 3}, {Black, 35}, {Black, 52}}},
		{52, []rbCheckData{{Red, 3}, {Black, 35}}},
		{3, []rbCheckData{{Black, 35}}},
		{35, []rbCheckData{}},
	}
	for _, step := range steps {
		x, err := tree.Remove(step.key)
		require.NoError(t, err)
		require.Equal(t, step.key, x.Key())
		require.Equal(t, step.expected, rbtreeColors(tree))
		requireRBValid(t, tree)
	}
	require.Equal(t, int64(0), tree.Len())
}

func TestRbtree_RemoveMin(t *testing.T) {
	tree := NewRBTree[uint64, uint64](WithRemoveBorrowPred[uint64, uint64]())
	for _, k := range []uint64{52, 47, 3, 35, 24} {
		_, err := tree.Insert(k, 1)
		require.NoError(t, err)
	}
	require.Equal(t, []rbCheckData{
		{Red, 3}, {Black, 24}, {Red, 35}, {Black, 47}, {Black, 52},
	}, rbtreeColors(tree))

	// remove min

	steps := []struct {
		key      uint64
		expected []rbCheckData
	}{
		{3, []rbCheckData{{Black, 24}, {Red, 35}, {Black, 47}, {Black, 52}}},
		{24, []rbCheckData{{Black, 35}, {Black, 47}, {Black, 52}}},
		{35, []rbCheckData{{Black, 47}, {Red, 52}}},
		{47, []rbCheckData{{Black, 52}}},
		{52, []rbCheckData{}},
	}
	for _, step := range steps {
		x, err := tree.RemoveMin()
		require.NoError(t, err)
		require.Equal(t, step.key, x.Key())
		require.Equal(t, step.expected, rbtreeColors(tree))
		requireRBValid(t, tree)
	}
	require.Equal(t, int64(0), tree.Len())

	_, err := tree.RemoveMin()
	require.ErrorIs(t, err, ErrEmptyTree)
}

func TestRbtree_RemoveMax(t *testing.T) {
	tree := NewRBTree[uint64, uint64]()
	for _, k := range lo.Shuffle(lo.Range(128)) {
		_, err := tree.Insert(uint64(k), uint64(k))
		require.NoError(t, err)
	}
	for i := 127; i >= 0; i-- {
		x, err := tree.RemoveMax()
		require.NoError(t, err)
		require.Equal(t, uint64(i), x.Key())
		require.Equal(t, uint64(i), x.Val())
		requireRBValid(t, tree)
	}
	_, err := tree.RemoveMax()
	require.ErrorIs(t, err, ErrEmptyTree)
}

func TestRbtree_HeightBound(t *testing.T) {
	tree := NewRBTree[uint64, uint64]()
	for i := uint64(1); i <= 1000; i++ {
		_, err := tree.Insert(i, i)
		require.NoError(t, err)
	}
	requireValid[uint64, uint64](t, tree)
	require.LessOrEqual(t, float64(tree.Height()), 2*math.Log2(1001))
	require.Equal(t, Black, tree.Root().(RBNode[uint64, uint64]).Color())
}

func rbtreeRandomInsertAndRemoveSequentialNumberRunCore(t *testing.T, rbRmByPred bool) {
	total := uint64(1000)
	insertTotal := uint64(float64(total) * 0.8)
	removeTotal := uint64(float64(total) * 0.2)

	opts := make([]TreeOpt[uint64, uint64], 0, 1)
	if rbRmByPred {
		opts = append(opts, WithRemoveBorrowPred[uint64, uint64]())
	}
	tree := NewRBTree[uint64, uint64](opts...)

	for i := uint64(0); i < insertTotal; i++ {
		_, err := tree.Insert(i, 1)
		require.NoError(t, err)
		requireRBValid(t, tree)
	}
	tree.Foreach(func(idx int64, key uint64, val uint64) bool {
		require.Equal(t, uint64(idx), key)
		return true
	})

	for i := insertTotal; i < removeTotal+insertTotal; i++ {
		_, err := tree.Insert(i, 1)
		require.NoError(t, err)
		requireRBValid(t, tree)
	}
	tree.Foreach(func(idx int64, key uint64, val uint64) bool {
		require.Equal(t, uint64(idx), key)
		return true
	})

	for i := insertTotal; i < removeTotal+insertTotal; i++ {
		require.True(t, tree.Contains(i))
		x, err := tree.Remove(i)
		require.NoError(t, err)
		require.Equal(t, i, x.Key())
		requireRBValid(t, tree)
	}
	tree.Foreach(func(idx int64, key uint64, val uint64) bool {
		require.Equal(t, uint64(idx), key)
		return true
	})
	require.Equal(t, int64(insertTotal), tree.Len())
}

func TestRbtreeRandomInsertAndRemove_SequentialNumber(t *testing.T) {
	type testcase struct {
		name       string
		rbRmByPred bool
	}
	testcases := []testcase{
		{
			name:       "rm by pred",
			rbRmByPred: true,
		},
		{
			name: "rm by succ",
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			rbtreeRandomInsertAndRemoveSequentialNumberRunCore(tt, tc.rbRmByPred)
		})
	}
}

func TestRBTreeRandomInsertAndRemove_SequentialNumber_Release(t *testing.T) {
	insertTotal := uint64(100_000)

	tree := NewRBTree[uint64, uint64]()

	rand := uint64(randv2.Uint32() % 1_000)
	for i := uint64(0); i < insertTotal; i++ {
		_, err := tree.Insert(i, 1)
		require.NoError(t, err)
		if i%1000 == rand {
			requireRBValid(t, tree)
		}
	}
	tree.Foreach(func(idx int64, key uint64, val uint64) bool {
		require.Equal(t, uint64(idx), key)
		return true
	})
	tree.Release()
	require.Equal(t, int64(0), tree.Len())
	require.Nil(t, tree.Root())
}

func TestRbtreeRandomInsertAndRemove_ReverseSequentialNumber(t *testing.T) {
	total := int64(10000)
	insertTotal := int64(float64(total) * 0.8)
	removeTotal := int64(float64(total) * 0.2)

	tree := NewRBTree[int64, uint64](WithDesc[int64, uint64]())

	rand := int64(randv2.Uint32() % 1_000)
	for i := insertTotal - 1; i >= 0; i-- {
		_, err := tree.Insert(i, 1)
		require.NoError(t, err)
		if i%1000 == rand {
			require.NoError(t, Validate[int64, uint64](tree))
		}
	}
	tree.Foreach(func(idx int64, key int64, val uint64) bool {
		require.Equal(t, insertTotal-1-idx, key)
		return true
	})

	for i := removeTotal + insertTotal - 1; i >= insertTotal; i-- {
		_, err := tree.Insert(i, 1)
		require.NoError(t, err)
	}
	tree.Foreach(func(idx int64, key int64, val uint64) bool {
		require.Equal(t, removeTotal+insertTotal-1-idx, key)
		return true
	})

	for i := insertTotal; i < removeTotal+insertTotal; i++ {
		x, err := tree.Remove(i)
		require.NoError(t, err)
		require.Equal(t, i, x.Key())
	}
	require.NoError(t, Validate[int64, uint64](tree))
	tree.Foreach(func(idx int64, key int64, val uint64) bool {
		require.Equal(t, insertTotal-1-idx, key)
		return true
	})
}

func rbtreeRandomInsertAndRemove_RandomMonoNumberRunCore(t *testing.T, total uint64, rbRmByPred bool, violationCheck bool) {
	insertTotal := uint64(float64(total) * 0.8)
	removeTotal := uint64(float64(total) * 0.2)

	insertElements := make([]uint64, 0, insertTotal)
	removeElements := make([]uint64, 0, removeTotal)

	// Strictly increasing numbers with random gaps, dealt into two sets.
	num := uint64(0)
	for uint64(len(insertElements)) < insertTotal || uint64(len(removeElements)) < removeTotal {
		num += 1 + uint64(randv2.Uint32()%100)
		if num&0x1 == 0 && uint64(len(insertElements)) < insertTotal {
			insertElements = append(insertElements, num)
		} else if uint64(len(removeElements)) < removeTotal {
			removeElements = append(removeElements, num)
		} else {
			insertElements = append(insertElements, num)
		}
	}

	insertElements = lo.Shuffle(insertElements)
	removeElements = lo.Shuffle(removeElements)

	opts := make([]TreeOpt[uint64, uint64], 0, 1)
	if rbRmByPred {
		opts = append(opts, WithRemoveBorrowPred[uint64, uint64]())
	}
	tree := NewRBTree[uint64, uint64](opts...)

	for i := uint64(0); i < insertTotal; i++ {
		_, err := tree.Insert(insertElements[i], i)
		require.NoError(t, err)
		if violationCheck {
			requireRBValid(t, tree)
		}
	}
	sort.Slice(insertElements, func(i, j int) bool {
		return insertElements[i] < insertElements[j]
	})
	tree.Foreach(func(idx int64, key uint64, val uint64) bool {
		require.Equal(t, insertElements[idx], key)
		return true
	})

	for i := uint64(0); i < removeTotal; i++ {
		_, err := tree.Insert(removeElements[i], 1)
		require.NoError(t, err)
		if violationCheck {
			requireRBValid(t, tree)
		}
	}
	requireRBValid(t, tree)

	for i := uint64(0); i < removeTotal; i++ {
		x, err := tree.Remove(removeElements[i])
		require.NoError(t, err)
		require.Equalf(t, removeElements[i], x.Key(), "value exp: %d, real: %d\n", removeElements[i], x.Key())
		if violationCheck {
			requireRBValid(t, tree)
		}
	}
	requireValid[uint64, uint64](t, tree)
	tree.Foreach(func(idx int64, key uint64, val uint64) bool {
		require.Equal(t, insertElements[idx], key)
		return true
	})
}

func TestRbtreeRandomInsertAndRemove_RandomMonotonicNumber(t *testing.T) {
	type testcase struct {
		name           string
		rbRmByPred     bool
		total          uint64
		violationCheck bool
	}
	testcases := []testcase{
		{
			name:       "rm by pred 1000000",
			rbRmByPred: true,
			total:      1000000,
		},
		{
			name:  "rm by succ 1000000",
			total: 1000000,
		},
		{
			name:           "violation check rm by pred 10000",
			rbRmByPred:     true,
			total:          10000,
			violationCheck: true,
		},
		{
			name:           "violation check rm by succ 10000",
			total:          10000,
			violationCheck: true,
		},
	}
	t.Parallel()
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			rbtreeRandomInsertAndRemove_RandomMonoNumberRunCore(tt, tc.total, tc.rbRmByPred, tc.violationCheck)
		})
	}
}

func BenchmarkRBTree_Random(b *testing.B) {
	testByBytes := []byte(`abc`)

	b.StopTimer()
	tree := NewRBTree[int, []byte]()

	rngArr := make([]int, 0, b.N)
	for i := 0; i < b.N; i++ {
		rngArr = append(rngArr, randv2.Int())
	}

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.Insert(rngArr[i], testByBytes); err != nil {
			panic(err)
		}
	}
}

func BenchmarkRBTree_Serial(b *testing.B) {
	testByBytes := []byte(`abc`)

	b.StopTimer()
	tree := NewRBTree[int, []byte]()

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tree.Insert(i, testByBytes)
	}
}
