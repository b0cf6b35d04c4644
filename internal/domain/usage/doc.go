// Package usage tracks consumption against tier quotas.
//
// Counters are bucketed per owner and per period (day, month). A new period
// starts from zero in a fresh bucket; older buckets are never rewritten.
// Quota evaluation is advisory: nothing in this package refuses work.
package usage
