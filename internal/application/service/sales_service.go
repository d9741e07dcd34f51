package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Hardik699/hanuram-sale-new/internal/domain/entity"
	"github.com/Hardik699/hanuram-sale-new/internal/domain/enum"
	"github.com/Hardik699/hanuram-sale-new/internal/domain/repository"
	"github.com/Hardik699/hanuram-sale-new/internal/infrastructure/cache"
	"github.com/Hardik699/hanuram-sale-new/pkg/logger"
)

// SalesService answers the aggregation queries: per-item sales split by
// channel, month, day and restaurant, computed from the raw row batches
// on every call (or served from a short-lived cache).
type SalesService struct {
	itemRepo  repository.ItemRepository
	batchRepo repository.RowBatchRepository
	cache     cache.SalesCache
	cacheTTL  time.Duration
	log       *logger.Logger
}

func NewSalesService(
	itemRepo repository.ItemRepository,
	batchRepo repository.RowBatchRepository,
	salesCache cache.SalesCache,
	cacheTTL time.Duration,
	log *logger.Logger,
) *SalesService {
	return &SalesService{
		itemRepo:  itemRepo,
		batchRepo: batchRepo,
		cache:     salesCache,
		cacheTTL:  cacheTTL,
		log:       log,
	}
}

// GetItemSales aggregates every stored row batch for one catalog item.
// startDate and endDate are inclusive "2006-01-02" bounds; both must
// parse for the window to apply, otherwise the full sentinel range is
// scanned. restaurant, when non-empty, restricts rows to that exact
// restaurant name. An unknown item yields the empty shape, not an error.
func (s *SalesService) GetItemSales(ctx context.Context, itemID, startDate, endDate, restaurant string) (*entity.SalesAggregate, error) {
	key := fmt.Sprintf("sales:item:%s:%s:%s:%s", itemID, startDate, endDate, restaurant)
	if agg, ok, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("sales cache read failed")
	} else if ok {
		s.log.Debug().Str("key", key).Msg("sales cache hit")
		return agg, nil
	}

	item, err := s.itemRepo.GetByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	idx := buildVariationIndex(item)
	if len(idx) == 0 {
		return emptyAggregate(itemID), nil
	}

	window := unboundedWindow()
	start, startErr := time.Parse("2006-01-02", startDate)
	end, endErr := time.Parse("2006-01-02", endDate)
	if startErr == nil && endErr == nil {
		window = dateWindow{Start: start.UTC(), End: end.UTC()}
	}

	batches, err := s.batchRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	st := aggregate(batches, idx, window, restaurant)

	s.log.Info().
		Str("item_id", itemID).
		Int("batches", len(batches)).
		Int("rows_scanned", st.scanned).
		Int("rows_matched", st.matched).
		Int("rows_skipped_date", st.skippedDate).
		Int("batches_skipped", st.skippedBatches).
		Msg("sales aggregation complete")

	agg := renderAggregate(itemID, st)

	if err := s.cache.Set(ctx, key, agg, s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("sales cache write failed")
	}

	return agg, nil
}

// ListRestaurants returns the distinct restaurant names appearing across
// all stored batches, sorted. Rows without a name count as "Unknown".
func (s *SalesService) ListRestaurants(ctx context.Context) ([]string, error) {
	batches, err := s.batchRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, batch := range batches {
		restaurantIdx := columnIndex(batch.Header, colRestaurant)
		if restaurantIdx == -1 {
			continue
		}
		for _, row := range batch.Rows {
			name := cellAt(row, restaurantIdx).Text()
			if name == "" {
				name = "Unknown"
			}
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// emptyAggregate is the zero-sales shape with every slice and map
// initialized, so JSON renders [] and {} instead of null.
func emptyAggregate(itemID string) *entity.SalesAggregate {
	return &entity.SalesAggregate{
		ItemID:          itemID,
		Zomato:          entity.ChannelSales{Variations: []entity.VariationSales{}},
		Swiggy:          entity.ChannelSales{Variations: []entity.VariationSales{}},
		Dining:          entity.ChannelSales{Variations: []entity.VariationSales{}},
		Parcel:          entity.ChannelSales{Variations: []entity.VariationSales{}},
		Monthly:         []entity.MonthlySalesPoint{},
		Daily:           []entity.DailySalesPoint{},
		RestaurantSales: map[string]float64{},
	}
}

// renderAggregate sorts the accumulator into the stable response shape:
// variations by name, months and days chronologically (their string
// forms sort lexicographically in calendar order).
func renderAggregate(itemID string, st *aggregationState) *entity.SalesAggregate {
	agg := emptyAggregate(itemID)

	agg.Zomato = renderChannel(st.byChannelVariation[enum.ChannelZomato])
	agg.Swiggy = renderChannel(st.byChannelVariation[enum.ChannelSwiggy])
	agg.Dining = renderChannel(st.byChannelVariation[enum.ChannelDining])
	agg.Parcel = renderChannel(st.byChannelVariation[enum.ChannelParcel])

	months := make([]string, 0, len(st.byMonthChannel))
	for month := range st.byMonthChannel {
		months = append(months, month)
	}
	sort.Strings(months)
	for _, month := range months {
		channels := st.byMonthChannel[month]
		point := entity.MonthlySalesPoint{
			Month:            month,
			ZomatoVariations: map[string]float64{},
			SwiggyVariations: map[string]float64{},
			DiningVariations: map[string]float64{},
			ParcelVariations: map[string]float64{},
		}
		if m := channels[enum.ChannelZomato]; m != nil {
			point.ZomatoQty = m.Total
			point.ZomatoVariations = m.Variations
		}
		if m := channels[enum.ChannelSwiggy]; m != nil {
			point.SwiggyQty = m.Total
			point.SwiggyVariations = m.Variations
		}
		if m := channels[enum.ChannelDining]; m != nil {
			point.DiningQty = m.Total
			point.DiningVariations = m.Variations
		}
		if m := channels[enum.ChannelParcel]; m != nil {
			point.ParcelQty = m.Total
			point.ParcelVariations = m.Variations
		}
		point.TotalQty = point.ZomatoQty + point.SwiggyQty + point.DiningQty + point.ParcelQty
		agg.Monthly = append(agg.Monthly, point)
	}

	days := make([]string, 0, len(st.byDayChannel))
	for day := range st.byDayChannel {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		channels := st.byDayChannel[day]
		point := entity.DailySalesPoint{
			Date:      day,
			ZomatoQty: channels[enum.ChannelZomato],
			SwiggyQty: channels[enum.ChannelSwiggy],
			DiningQty: channels[enum.ChannelDining],
			ParcelQty: channels[enum.ChannelParcel],
		}
		point.TotalQty = point.ZomatoQty + point.SwiggyQty + point.DiningQty + point.ParcelQty
		agg.Daily = append(agg.Daily, point)
	}

	agg.RestaurantSales = st.byRestaurant
	return agg
}

func renderChannel(variations map[string]*channelVariationTotals) entity.ChannelSales {
	ch := entity.ChannelSales{Variations: []entity.VariationSales{}}
	names := make([]string, 0, len(variations))
	for name := range variations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v := variations[name]
		ch.Quantity += v.Quantity
		ch.Value += v.Value
		ch.Variations = append(ch.Variations, entity.VariationSales{
			Name:     name,
			Quantity: v.Quantity,
			Value:    v.Value,
		})
	}
	return ch
}
