// Package orient decides whether a draw history runs oldest→newest or must be
// reversed.
//
// The decision uses a coverage score: for every position, count the distinct
// digit values seen among the predecessor draws (every draw but the last), and
// sum over positions (max 50). The history is reversed only when its reverse
// scores strictly higher; ties keep the given order.
//
// This is a heuristic. Short or low-diversity histories can be misclassified,
// and the exact rule (predecessor-only coverage, strict comparison) is kept so
// decisions stay reproducible.
package orient
