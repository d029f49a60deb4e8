package tree

import (
	"go.opentelemetry.io/otel/metric"

	"github.com/benz9527/xtree/lib/xlog"
)

type TreeOpt[K any, V any] func(*binaryTree[K, V])

// WithDesc reverses the comparator, iteration becomes descending.
func WithDesc[K any, V any]() TreeOpt[K, V] {
	return func(tree *binaryTree[K, V]) {
		tree.isDesc = true
	}
}

// WithRemoveBorrowPred replaces a removed node that has two children
// by its in-order predecessor instead of its successor.
func WithRemoveBorrowPred[K any, V any]() TreeOpt[K, V] {
	return func(tree *binaryTree[K, V]) {
		tree.isRmBorrowPred = true
	}
}

// WithReplaceDisabled rejects the insertion of an existing key.
func WithReplaceDisabled[K any, V any]() TreeOpt[K, V] {
	return func(tree *binaryTree[K, V]) {
		tree.isReplaceDisabled = true
	}
}

func WithLogger[K any, V any](logger xlog.XLogger) TreeOpt[K, V] {
	return func(tree *binaryTree[K, V]) {
		tree.logger = logger
	}
}

// WithStats records the tree operations as otel metrics.
// The global meter provider is used if none is given.
func WithStats[K any, V any](provider ...metric.MeterProvider) TreeOpt[K, V] {
	return func(tree *binaryTree[K, V]) {
		tree.isStatsEnabled = true
		if len(provider) > 0 && provider[0] != nil {
			tree.meterProvider = provider[0]
		}
	}
}

// WithReleaseHook is called once per entry by Release.
func WithReleaseHook[K any, V any](hook func(key K, val V)) TreeOpt[K, V] {
	return func(tree *binaryTree[K, V]) {
		tree.releaseHook = hook
	}
}
