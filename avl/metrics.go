package avl

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var mergeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "avltree_merge_total",
	Help: "AVL tree merges, by strategy",
}, []string{"strategy"})

var mergeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "avltree_merge_duration_seconds",
	Help:    "Time to merge two AVL trees",
	Buckets: prometheus.ExponentialBucketsRange(0.000001, 2, 20),
}, []string{"strategy"})

var buildKeys = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "avltree_build_keys",
	Help:    "Number of keys per bulk tree build",
	Buckets: prometheus.ExponentialBuckets(1, 4, 12),
})

var insertTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "avltree_insert_total",
	Help: "AVL tree key insertions, by result",
}, []string{"result"})

// resolved once; inserts are on the hot path
var (
	insertAdded     = insertTotal.WithLabelValues("added")
	insertDuplicate = insertTotal.WithLabelValues("duplicate")
)
