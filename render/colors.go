package render

// Palette shared by panels and the compositor
var (
	RgbBackground = RGB{26, 27, 38} // Tokyo Night background

	RgbPanelRed   = RGB{255, 0, 0}
	RgbPanelGreen = RGB{0, 255, 0}

	RgbConsoleBg     = RGB{20, 20, 30}
	RgbConsoleFg     = RGB{200, 200, 200}
	RgbConsolePrompt = RGB{100, 200, 220}
	RgbConsoleCursor = RGB{255, 165, 0} // Orange, matches the insert cursor
)
