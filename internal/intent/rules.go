package intent

import (
	"context"
	"strings"
	"time"
)

func matchStop(txt string) bool {
	return containsAny(txt, "exit", "quit", "stop", "bye")
}

func (d *Dispatcher) runStop(ctx context.Context, txt string) {
	d.sayWait("Goodbye! Stopping assistant.")
	d.deps.Exit()
}

func matchTime(txt string) bool { return strings.Contains(txt, "time") }

func (d *Dispatcher) runTime(ctx context.Context, txt string) {
	d.say("The time is " + d.deps.Now().Format("3:04 PM") + ".")
}

func matchDate(txt string) bool { return strings.Contains(txt, "date") }

func (d *Dispatcher) runDate(ctx context.Context, txt string) {
	d.say("Today's date is " + d.deps.Now().Format("2006-01-02"))
}

func matchSearch(txt string) bool {
	return hasAnyPrefix(txt, "search ", "google ")
}

func (d *Dispatcher) runSearch(ctx context.Context, txt string) {
	q := remainder(txt)
	d.say("Searching the web for " + q)
	d.deps.Actions.SearchWeb(q)
}

func matchOpen(txt string) bool {
	return hasAnyPrefix(txt, "open ", "launch ")
}

func (d *Dispatcher) runOpen(ctx context.Context, txt string) {
	target := remainder(txt)
	d.say("Opening " + target)
	switch {
	case strings.HasPrefix(target, "http"):
		d.deps.Actions.OpenURL(target)
	case strings.Contains(target, ".") && !strings.Contains(target, " "):
		// Looks like a bare hostname.
		d.deps.Actions.OpenURL("http://" + target)
	default:
		d.deps.Actions.OpenTarget(target)
	}
}

func matchNote(txt string) bool {
	return strings.HasPrefix(txt, "note ") || strings.Contains(txt, "take note")
}

func (d *Dispatcher) runNote(ctx context.Context, txt string) {
	var note string
	if strings.HasPrefix(txt, "note ") {
		note = remainder(txt)
	} else {
		d.say("What would you like me to note?")
		note = d.listen(ctx)
	}

	if note == "" {
		d.say("No note recorded.")
		return
	}

	path, err := d.deps.Notes.Add(note)
	if err != nil {
		d.say("Couldn't save the note.")
		return
	}
	d.say("Saved note to " + path)
}

func matchRemind(txt string) bool { return strings.Contains(txt, "remind me") }

func (d *Dispatcher) runRemind(ctx context.Context, txt string) {
	d.say("Okay, when should I remind you? (say in 10 minutes / at 18:30 / in 1 hour)")
	when := d.listen(ctx)

	d.say("What is the reminder message?")
	message := d.listen(ctx)
	if message == "" {
		message = "Reminder"
	}

	fireAt, ok := ParseWhen(d.deps.Now(), when)
	if !ok {
		d.say("Couldn't parse time. Reminder not set.")
		return
	}

	d.deps.Reminders.Schedule(fireAt, message)
	d.say("Reminder set for " + fireAt.Format(time.RFC3339))
}

func matchCall(txt string) bool { return strings.HasPrefix(txt, "call ") }

func (d *Dispatcher) runCall(ctx context.Context, txt string) {
	number := strings.TrimSpace(remainder(txt))
	if d.deps.Actions.Call(number) {
		d.say("Calling " + number)
		return
	}
	d.say("Call feature unavailable on this device.")
}

func matchSMS(txt string) bool {
	return hasAnyPrefix(txt, "send sms to ", "send message to ")
}

func (d *Dispatcher) runSMS(ctx context.Context, txt string) {
	// "send sms to +911234567890": the number is the fourth token.
	parts := strings.SplitN(txt, " ", 4)
	if len(parts) < 4 || parts[3] == "" {
		d.say("Please say the command like: send sms to +91xxxxxxxxxx")
		return
	}
	number := parts[3]

	d.say("What is the message?")
	message := d.listen(ctx)

	if message != "" && d.deps.Actions.SendSMS(number, message) {
		d.say("Message sent.")
		return
	}
	d.say("Unable to send message.")
}

func matchWiki(txt string) bool {
	return strings.Contains(txt, "wikipedia") || hasAnyPrefix(txt, "who is ", "what is ")
}

func (d *Dispatcher) runWiki(ctx context.Context, txt string) {
	topic := wikiTopic(txt)
	if topic == "" {
		d.runFallback(ctx, txt)
		return
	}

	summary, err := d.deps.Wiki.Summary(ctx, topic)
	if err != nil {
		d.say("Couldn't fetch a summary for " + topic + ". Opening web search.")
		d.deps.Actions.SearchWeb(topic)
		return
	}
	d.say(summary)
}

// wikiTopic strips the trigger phrase: "wikipedia" anywhere, or a leading
// "who is" / "what is".
func wikiTopic(txt string) string {
	topic := strings.TrimSpace(strings.ReplaceAll(txt, "wikipedia", ""))
	if hasAnyPrefix(topic, "who is ", "what is ") {
		words := strings.Fields(topic)
		topic = strings.Join(words[2:], " ")
	}
	return strings.TrimSpace(topic)
}

func (d *Dispatcher) runFallback(ctx context.Context, txt string) {
	d.say("I didn't catch a specific command, searching the web for: " + txt)
	d.deps.Actions.SearchWeb(txt)
}
