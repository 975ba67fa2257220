// Package hcluster implements agglomerative hierarchical clustering over a
// precomputed distance matrix and the flat "maxclust" cut used by the
// trend/volatility pipeline.
//
// 🚀 What is hcluster?
//
//	Every item starts as its own cluster. At each step the two closest
//	clusters are merged and the distances from the new cluster to all others
//	are recomputed with the Lance–Williams formula of the chosen linkage.
//	The n-1 merges form a Dendrogram, which Cut turns into exactly k flat
//	clusters.
//
// ✨ Key features
//
//   - Single, Complete (default), Average and Ward linkage.
//   - Dendrogram encoding compatible with the usual linkage-matrix layout:
//     ids < n are leaves, id n+i is the cluster created by merge i.
//   - Deterministic: ties pick the lowest (i, j) pair; labels are 1..k in
//     order of each cluster's lowest member index.
//   - Errors wrap trendclust.ErrClustering so pipeline callers can branch on
//     the class without knowing this package.
//
// ⚙️ Usage
//
//	labels, dg, err := hcluster.Cluster(d, 3, hcluster.Complete)
//	order := dg.Leaves()
//
// Complexity: Linkage is O(n³) time and O(n²) memory, which is adequate for
// the few hundred samples a single run produces.
package hcluster
