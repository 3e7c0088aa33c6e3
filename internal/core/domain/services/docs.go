// Package services holds stateless domain services that work across the
// booking and order models.
//
// SummaryFormatter turns a finalized booking draft into the review screen's
// display groups, the dispatcher message and the deep link that carries it.
package services
