// Package campaign holds the content organization graph:
//
//	Campaign
//	├── WebpageSource  (unique per campaign and URL)
//	└── ContentSeries  (one per generation run)
//	    └── ContentItem (sequence 1..N within the series)
//
// Every child row belongs to exactly one campaign and is removed with it.
package campaign
