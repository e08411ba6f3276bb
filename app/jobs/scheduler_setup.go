package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meditrack/app/inventory"
	"meditrack/core/app/activities"
	"meditrack/core/email"
	"meditrack/core/logger"
	"meditrack/core/module"
	"meditrack/core/scheduler"
)

const activityRetention = 90 * 24 * time.Hour

// SetupScheduler registers the background jobs and returns the scheduler,
// ready to start.
func SetupScheduler(deps module.Dependencies, inventoryService *inventory.InventoryService, activityService *activities.ActivityService) *scheduler.CronScheduler {
	cronScheduler := scheduler.NewCronScheduler(deps.Logger)

	register := func(task *scheduler.CronTask) {
		if err := cronScheduler.RegisterTask(task); err != nil {
			deps.Logger.Error("failed to register scheduled task",
				logger.String("task", task.Name),
				logger.String("error", err.Error()))
		}
	}

	register(&scheduler.CronTask{
		Name:        "cache-sweep",
		Description: "Evict expired cache entries",
		CronExpr:    "* * * * *",
		Enabled:     true,
		Handler: func(ctx context.Context) error {
			removed := deps.Cache.Sweep()
			if removed > 0 {
				deps.Logger.Debug("swept expired cache entries", logger.Int("removed", removed))
			}
			return nil
		},
	})

	register(&scheduler.CronTask{
		Name:        "activity-retention",
		Description: "Delete activity entries past the retention window",
		CronExpr:    "0 3 * * *",
		Enabled:     true,
		Handler: func(ctx context.Context) error {
			deleted, err := activityService.CleanupOlderThan(activityRetention)
			if err != nil {
				return err
			}
			if deleted > 0 {
				deps.Logger.Info("cleaned up old activity entries", logger.Int64("deleted", deleted))
			}
			return nil
		},
	})

	register(&scheduler.CronTask{
		Name:        "low-stock-digest",
		Description: "Email a daily digest of low stock items",
		CronExpr:    "0 7 * * *",
		Enabled:     deps.EmailSender != nil && deps.Config.AlertRecipient != "",
		Handler: func(ctx context.Context) error {
			return sendLowStockDigest(deps, inventoryService)
		},
	})

	return cronScheduler
}

func sendLowStockDigest(deps module.Dependencies, inventoryService *inventory.InventoryService) error {
	items, err := inventoryService.GetLowStock()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	var body strings.Builder
	body.WriteString("The following items are at or below their minimum stock level:\n\n")
	for _, item := range items {
		fmt.Fprintf(&body, "- %s (%s): %d %s remaining, minimum %d\n",
			item.DisplayName(), item.Code, item.StockQuantity, item.Unit, item.MinimumStockLevel)
	}

	message := &email.Message{
		To:       []string{deps.Config.AlertRecipient},
		Subject:  fmt.Sprintf("Low stock alert: %d items need attention", len(items)),
		TextBody: body.String(),
	}
	if err := deps.EmailSender.Send(message); err != nil {
		deps.Logger.Error("failed to send low stock digest", logger.String("error", err.Error()))
		return err
	}

	deps.Logger.Info("sent low stock digest", logger.Int("items", len(items)))
	return nil
}
