package usecase

import "fmt"

// HelpText renders the static help message with the lifetime search count.
func HelpText(totalSearches int64) string {
	return fmt.Sprintf(`🔍 网盘搜索帮助

📝 基本用法：
/搜索 关键词 [页码] [参数]

📋 参数说明：
• 页码：1, 2, 3... (默认第1页)
• 时间：week/一周, month/一月, three_month/三月, year/一年
• 类型：BDY/百度, ALY/阿里, QUARK/夸克, XUNLEI/迅雷
• 精确：exact/精确 (精确匹配)

💡 使用示例：
/搜索 Python教程
/搜索 电影 2 month BDY
/搜索 小说 1 week exact
/搜索 纪录片 阿里 精确

❓ 其他命令：
/网盘帮助 - 显示此帮助
/网盘配置 - 机器人配置（管理员）

📊 统计：
总搜索次数：%d`, totalSearches)
}
