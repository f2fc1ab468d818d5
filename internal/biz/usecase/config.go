package usecase

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"netdiskbot/internal/biz/domain"
	"netdiskbot/internal/biz/repo"
)

// ConfigUsecase owns the mutable bot configuration. Reads take a snapshot;
// every accepted mutation is persisted through the repository.
type ConfigUsecase struct {
	configRepo repo.ConfigRepo

	mu  sync.RWMutex
	cfg *domain.Config
}

// NewConfigUsecase loads the configuration and wraps it.
func NewConfigUsecase(configRepo repo.ConfigRepo) (*ConfigUsecase, error) {
	cfg, err := configRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &ConfigUsecase{configRepo: configRepo, cfg: cfg}, nil
}

// Snapshot returns a copy of the current configuration.
func (uc *ConfigUsecase) Snapshot() *domain.Config {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.cfg.Clone()
}

// Token returns the configured API token.
func (uc *ConfigUsecase) Token() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.cfg.Token
}

// HandleCommand executes one config subcommand. args is the command text
// with the config prefix already stripped. Returns the outcome flag and
// the user-facing message.
func (uc *ConfigUsecase) HandleCommand(args string) (bool, string) {
	parts := strings.Fields(args)

	if len(parts) == 0 {
		return true, uc.summary()
	}
	if len(parts) < 2 {
		return false, "❌ 配置格式错误，发送 /网盘配置 查看配置帮助"
	}

	key := strings.ToLower(parts[0])
	value := parts[1]

	switch key {
	case "token":
		uc.mutate(func(cfg *domain.Config) bool {
			cfg.Token = value
			return true
		})
		return true, "✅ API Token 配置成功"

	case "max_results":
		n, err := strconv.Atoi(value)
		if err != nil {
			return false, "❌ 请输入有效的数字"
		}
		if n < domain.MinMaxResults || n > domain.MaxMaxResults {
			return false, fmt.Sprintf("❌ 最大结果数必须在%d-%d之间", domain.MinMaxResults, domain.MaxMaxResults)
		}
		uc.mutate(func(cfg *domain.Config) bool {
			cfg.MaxResults = n
			return true
		})
		return true, fmt.Sprintf("✅ 最大结果数设置为 %d", n)

	case "interval":
		n, err := strconv.Atoi(value)
		if err != nil {
			return false, "❌ 请输入有效的数字"
		}
		if n < domain.MinRequestInterval || n > domain.MaxRequestInterval {
			return false, fmt.Sprintf("❌ 请求间隔必须在%d-%d秒之间", domain.MinRequestInterval, domain.MaxRequestInterval)
		}
		uc.mutate(func(cfg *domain.Config) bool {
			cfg.RequestInterval = n
			return true
		})
		return true, fmt.Sprintf("✅ 请求间隔设置为 %d秒", n)

	case "add_group":
		var dup bool
		uc.mutate(func(cfg *domain.Config) bool {
			if cfg.HasGroup(value) {
				dup = true
				return false
			}
			cfg.EnabledGroups = append(cfg.EnabledGroups, value)
			return true
		})
		if dup {
			return false, "❌ 该群组已存在"
		}
		return true, fmt.Sprintf("✅ 已添加群组 %s", value)

	case "add_admin":
		var dup bool
		uc.mutate(func(cfg *domain.Config) bool {
			if cfg.HasAdmin(value) {
				dup = true
				return false
			}
			cfg.AdminUsers = append(cfg.AdminUsers, value)
			return true
		})
		if dup {
			return false, "❌ 该用户已是管理员"
		}
		return true, fmt.Sprintf("✅ 已添加管理员 %s", value)

	default:
		return false, "❌ 未知配置项"
	}
}

// mutate applies fn under the lock and persists the result when fn
// reports a change. Persistence failures are logged and the in-memory
// change is kept.
func (uc *ConfigUsecase) mutate(fn func(cfg *domain.Config) bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if !fn(uc.cfg) {
		return
	}
	if err := uc.configRepo.Save(uc.cfg); err != nil {
		log.Printf("[WARN] failed to save config: %v", err)
	}
}

func (uc *ConfigUsecase) summary() string {
	cfg := uc.Snapshot()

	tokenState := "未配置"
	if cfg.Token != "" {
		tokenState = "已配置"
	}

	return fmt.Sprintf(`📝 网盘搜索配置

🔑 API Token: %s
📊 最大结果数: %d
⏰ 请求间隔: %d秒
👥 启用群组: %d个
👑 管理员: %d个

💡 配置命令：
/网盘配置 token <你的token>
/网盘配置 max_results <数量>
/网盘配置 interval <秒数>
/网盘配置 add_group <群号>
/网盘配置 add_admin <用户ID>`,
		tokenState, cfg.MaxResults, cfg.RequestInterval,
		len(cfg.EnabledGroups), len(cfg.AdminUsers))
}
