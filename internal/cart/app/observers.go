package app

import "log/slog"

// LogObserver writes every cart change at debug level.
func LogObserver(log *slog.Logger) Observer {
	return func(c Change) {
		log.Debug("cart changed",
			slog.String("op", string(c.Op)),
			slog.Int64("product_id", c.ProductID),
			slog.String("cart_id", c.Cart.ID),
			slog.Int("lines", len(c.Cart.Lines)),
			slog.Int("items", c.Cart.ItemCount()),
		)
	}
}
