package service

import (
	"context"
	"sort"
	"strings"

	"github.com/Hardik699/hanuram-sale-new/internal/domain/repository"
	"github.com/Hardik699/hanuram-sale-new/pkg/logger"
)

// SAPCodeUsage is one SAP code's footprint across the stored batches.
type SAPCodeUsage struct {
	SAPCode    string   `json:"sap_code"`
	RowCount   int      `json:"row_count"`
	Categories []string `json:"categories"`
}

// ItemMatch reports whether a catalog item's codes appear anywhere in
// the uploaded data, so unmapped items can be found before they silently
// aggregate to zero.
type ItemMatch struct {
	ItemID       string   `json:"item_id"`
	ItemName     string   `json:"item_name"`
	MatchedCodes []string `json:"matched_codes"`
	MissingCodes []string `json:"missing_codes"`
	Matched      bool     `json:"matched"`
}

// SAPService answers reconciliation questions between the item catalog
// and the SAP codes actually present in uploaded batches.
type SAPService struct {
	itemRepo  repository.ItemRepository
	batchRepo repository.RowBatchRepository
	log       *logger.Logger
}

func NewSAPService(itemRepo repository.ItemRepository, batchRepo repository.RowBatchRepository, log *logger.Logger) *SAPService {
	return &SAPService{itemRepo: itemRepo, batchRepo: batchRepo, log: log}
}

// ListCodes scans every batch and returns each distinct SAP code with
// its row count and the category names it appears under, most frequent
// first.
func (s *SAPService) ListCodes(ctx context.Context) ([]SAPCodeUsage, error) {
	batches, err := s.batchRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	categories := make(map[string]map[string]struct{})

	for _, batch := range batches {
		sapIdx := columnIndex(batch.Header, colSAPCode)
		if sapIdx == -1 {
			continue
		}
		categoryIdx := columnIndex(batch.Header, colCategory)

		for _, row := range batch.Rows {
			code := cellAt(row, sapIdx).Text()
			if code == "" {
				continue
			}
			counts[code]++
			if category := cellAt(row, categoryIdx).Text(); category != "" {
				if categories[code] == nil {
					categories[code] = make(map[string]struct{})
				}
				categories[code][category] = struct{}{}
			}
		}
	}

	usages := make([]SAPCodeUsage, 0, len(counts))
	for code, count := range counts {
		names := make([]string, 0, len(categories[code]))
		for name := range categories[code] {
			names = append(names, name)
		}
		sort.Strings(names)
		usages = append(usages, SAPCodeUsage{SAPCode: code, RowCount: count, Categories: names})
	}
	sort.Slice(usages, func(i, j int) bool {
		if usages[i].RowCount != usages[j].RowCount {
			return usages[i].RowCount > usages[j].RowCount
		}
		return usages[i].SAPCode < usages[j].SAPCode
	})

	return usages, nil
}

// MatchItems compares every catalog item's SAP codes against the codes
// present in uploaded batches. An item with no codes at all is reported
// as unmatched.
func (s *SAPService) MatchItems(ctx context.Context) ([]ItemMatch, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	batches, err := s.batchRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	uploaded := make(map[string]struct{})
	for _, batch := range batches {
		sapIdx := columnIndex(batch.Header, colSAPCode)
		if sapIdx == -1 {
			continue
		}
		for _, row := range batch.Rows {
			if code := cellAt(row, sapIdx).Text(); code != "" {
				uploaded[code] = struct{}{}
			}
		}
	}

	matches := make([]ItemMatch, 0, len(items))
	for _, item := range items {
		m := ItemMatch{
			ItemID:       item.ItemID,
			ItemName:     item.ItemName,
			MatchedCodes: []string{},
			MissingCodes: []string{},
		}
		for _, v := range item.Variations {
			code := strings.TrimSpace(v.SAPCode)
			if code == "" {
				continue
			}
			if _, ok := uploaded[code]; ok {
				m.MatchedCodes = append(m.MatchedCodes, code)
			} else {
				m.MissingCodes = append(m.MissingCodes, code)
			}
		}
		sort.Strings(m.MatchedCodes)
		sort.Strings(m.MissingCodes)
		m.Matched = len(m.MatchedCodes) > 0
		matches = append(matches, m)
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].ItemID < matches[j].ItemID })
	return matches, nil
}
