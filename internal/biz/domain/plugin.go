package domain

// PluginID identifies this bot in every handled result.
const PluginID = "netdisk_search"

// Descriptor is the metadata the host displays for the bot.
type Descriptor struct {
	Name        string
	Author      string
	Version     string
	Description string
	Usage       string
}

// Result is the outcome of handling one event. Handled=false means the
// event was not addressed to this bot and carries no message.
type Result struct {
	Handled  bool
	Success  bool
	Message  string
	PluginID string
}

// NotHandled is the result for events this bot does not react to.
func NotHandled() Result {
	return Result{Handled: false}
}

// HandledResult builds a handled result with the given outcome.
func HandledResult(success bool, message string) Result {
	return Result{Handled: true, Success: success, Message: message, PluginID: PluginID}
}
