// Package designkit builds reproducible experiment design matrices for
// ensemble simulation studies.
//
// 🚀 What is designkit?
//
//	A deterministic toolkit that turns a declarative configuration of
//	parameters, distributions, correlations and seeding rules into a
//	design matrix — one row per realization — ready for ensemble tooling:
//		• One-by-one (tornado) and full Monte Carlo design types
//		• Nearest-correlation-matrix repair (Higham alternating projections)
//		• Correlated sampling via Cholesky or rank-based Iman-Conover
//		• Bit-for-bit reproducible draws from declared seeds, never entropy
//
// ✨ Why choose designkit?
//
//   - Deterministic by construction – same configuration, same table
//   - Rock-solid contracts – sentinel errors, strict validation up front
//   - Pure Go numerics – dense kernels, no cgo
//
// Under the hood, everything is organized under five subpackages:
//
//	matrix/   — dense matrices, Jacobi eigendecomposition, Cholesky
//	nearcorr/ — nearest valid correlation matrix under the Frobenius norm
//	dist/     — quantile functions for the supported distribution families
//	design/   — the generation engine, summaries and Iman-Conover
//	designio/ — YAML configuration loading and CSV tables
//
// Quick example:
//
//	cfg, err := designio.LoadConfigFile("design.yaml")
//	if err != nil { ... }
//	res, err := design.Generate(cfg)
//	if err != nil { ... }
//	designio.WriteCSV(os.Stdout, res)
//
// See each subpackage's doc.go for the full contracts.
package designkit
