// Package sfs manipulates site frequency spectra: multi-dimensional
// tables of derived-allele counts, one dimension per population, with
// the classical diversity and differentiation estimators built on top
// (Tajima's pi and D, Watterson's theta, Fu & Li's D, F_st).
package sfs
