package tree

import (
	"context"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	TreeStatsName = "xboot/xtree"
)

type treeStats struct {
	kindOpt      metric.MeasurementOption
	leftOpt      metric.MeasurementOption
	rightOpt     metric.MeasurementOption
	insertCount  metric.Int64Counter
	replaceCount metric.Int64Counter
	removeCount  metric.Int64Counter
	rotateCount  metric.Int64Counter
	nodeCount    metric.Int64UpDownCounter
}

func (stats *treeStats) RecordInsert() {
	if stats == nil {
		return
	}
	stats.insertCount.Add(context.Background(), 1, stats.kindOpt)
	stats.nodeCount.Add(context.Background(), 1, stats.kindOpt)
}

func (stats *treeStats) RecordReplace() {
	if stats == nil {
		return
	}
	stats.replaceCount.Add(context.Background(), 1, stats.kindOpt)
}

func (stats *treeStats) RecordRemove() {
	if stats == nil {
		return
	}
	stats.removeCount.Add(context.Background(), 1, stats.kindOpt)
	stats.nodeCount.Add(context.Background(), -1, stats.kindOpt)
}

func (stats *treeStats) RecordRotate(dir RBDirection) {
	if stats == nil {
		return
	}
	if dir == Left {
		stats.rotateCount.Add(context.Background(), 1, stats.leftOpt)
		return
	}
	stats.rotateCount.Add(context.Background(), 1, stats.rightOpt)
}

func (stats *treeStats) RecordRelease(count int64) {
	if stats == nil || count <= 0 {
		return
	}
	stats.nodeCount.Add(context.Background(), -count, stats.kindOpt)
}

func newTreeStats(provider metric.MeterProvider, kind TreeKind) *treeStats {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	meter := provider.Meter(TreeStatsName)
	kindAttr := attribute.String("xtree.kind", kind.String())
	return &treeStats{
		kindOpt: metric.WithAttributeSet(attribute.NewSet(kindAttr)),
		leftOpt: metric.WithAttributeSet(attribute.NewSet(
			kindAttr,
			attribute.String("xtree.rotate.direction", "left"),
		)),
		rightOpt: metric.WithAttributeSet(attribute.NewSet(
			kindAttr,
			attribute.String("xtree.rotate.direction", "right"),
		)),
		insertCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xtree.insert.count",
			metric.WithDescription(`The count of new keys inserted into the tree.`),
		)),
		replaceCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xtree.replace.count",
			metric.WithDescription(`The count of values replaced by inserting an existing key.`),
		)),
		removeCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xtree.remove.count",
			metric.WithDescription(`The count of keys removed from the tree.`),
		)),
		rotateCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xtree.rotate.count",
			metric.WithDescription(`The count of single rotations done by rebalancing.`),
		)),
		nodeCount: lo.Must[metric.Int64UpDownCounter](meter.Int64UpDownCounter(
			"xtree.nodes",
			metric.WithDescription(`The number of nodes held by the trees.`),
		)),
	}
}
