package main

import "github.com/canyon289/ai-agent-basics/internal/app"

func main() {
	err := app.NewChatApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
