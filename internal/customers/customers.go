package customers

import (
	"context"
	"log/slog"
	"math/rand"
	"strconv"
	"time"

	"reddog/internal/domain/order"
	"reddog/internal/pkg/config"
	"reddog/internal/sidecar"
)

type customer struct {
	loyaltyID int
	first     string
	last      string
}

var roster = []customer{
	{1001, "Ada", "Lovelace"},
	{1002, "Grace", "Hopper"},
	{1003, "Alan", "Turing"},
	{1004, "Katherine", "Johnson"},
	{1005, "Edsger", "Dijkstra"},
	{1006, "Barbara", "Liskov"},
	{1007, "Donald", "Knuth"},
	{1008, "Radia", "Perlman"},
	{1009, "Tony", "Hoare"},
	{1010, "Frances", "Allen"},
}

// Simulator generates customer traffic against the order service: it loads
// the product catalog, then places randomized orders at a randomized pace
// until NumOrders is reached (-1 runs forever) or the context is cancelled.
type Simulator struct {
	invoker sidecar.Invoker
	cfg     config.CustomersConfig
	logger  *slog.Logger
	rand    *rand.Rand
}

func NewSimulator(invoker sidecar.Invoker, cfg config.CustomersConfig, logger *slog.Logger) *Simulator {
	return &Simulator{
		invoker: invoker,
		cfg:     cfg,
		logger:  logger,
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run blocks until the configured number of orders has been placed or ctx
// is cancelled. It returns the number of orders created.
func (s *Simulator) Run(ctx context.Context) (int, error) {
	s.logger.Info("virtual customers starting",
		"storeId", s.cfg.StoreID, "numOrders", s.cfg.NumOrders)

	products, err := s.loadProducts(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	for s.cfg.NumOrders == -1 || created < s.cfg.NumOrders {
		if err := s.pause(ctx, s.cfg.MinSecondsBetweenOrders, s.cfg.MaxSecondsBetweenOrders); err != nil {
			return created, err
		}

		s.placeOrder(ctx, products)
		created++
	}

	s.logger.Info("virtual customers completed execution", "ordersCreated", created)
	return created, nil
}

// loadProducts retries every 5 seconds until the order service answers,
// mirroring startup races between services.
func (s *Simulator) loadProducts(ctx context.Context) ([]order.Product, error) {
	for {
		var products []order.Product
		err := s.invoker.Get(ctx, s.cfg.OrderServiceAppID, "product", &products)
		if err == nil && len(products) > 0 {
			return products, nil
		}

		s.logger.Warn("unable to retrieve products, retrying in 5 seconds", "error", err)
		if err := s.pauseFor(ctx, 5*time.Second); err != nil {
			return nil, err
		}
	}
}

func (s *Simulator) placeOrder(ctx context.Context, products []order.Product) {
	customerOrder := s.buildRandomOrder(products)
	s.logger.Info("customer placing order",
		"firstName", customerOrder.FirstName,
		"lastName", customerOrder.LastName,
		"itemCount", len(customerOrder.OrderItems))

	if err := s.invoker.Post(ctx, s.cfg.OrderServiceAppID, "order", customerOrder); err != nil {
		s.logger.Error("failed to submit order",
			"firstName", customerOrder.FirstName,
			"lastName", customerOrder.LastName,
			"error", err)
	}
}

func (s *Simulator) buildRandomOrder(products []order.Product) order.CustomerOrder {
	c := roster[s.rand.Intn(len(roster))]

	uniqueItems := min(len(products), s.cfg.MaxUniqueItemsPerOrder)
	itemsToAdd := 1 + s.rand.Intn(uniqueItems)

	chosen := map[int]bool{}
	items := make([]order.CustomerOrderItem, 0, itemsToAdd)
	for len(items) < itemsToAdd {
		product := products[s.rand.Intn(len(products))]
		if chosen[product.ProductID] {
			continue
		}
		chosen[product.ProductID] = true

		items = append(items, order.CustomerOrderItem{
			ProductID: product.ProductID,
			Quantity:  1 + s.rand.Intn(s.cfg.MaxItemQuantity),
		})
	}

	return order.CustomerOrder{
		StoreID:    s.cfg.StoreID,
		FirstName:  c.first,
		LastName:   c.last,
		LoyaltyID:  strconv.Itoa(c.loyaltyID),
		OrderItems: items,
	}
}

func (s *Simulator) pause(ctx context.Context, minSeconds, maxSeconds int) error {
	if maxSeconds <= 0 {
		return ctx.Err()
	}
	seconds := minSeconds
	if maxSeconds > minSeconds {
		seconds += s.rand.Intn(maxSeconds - minSeconds + 1)
	}
	return s.pauseFor(ctx, time.Duration(seconds)*time.Second)
}

func (s *Simulator) pauseFor(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
