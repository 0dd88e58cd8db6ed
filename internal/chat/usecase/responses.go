package usecase

import (
	"fmt"
	"strings"

	"taskflow-pro/internal/model"
	"taskflow-pro/internal/task"
	"taskflow-pro/pkg/taskparse"
)

var greetings = []string{
	"Hey there! 👋 I'm your TaskFlow Pro assistant. How can I help you be more productive today?",
	"Hi! Ready to help you organize your day. What would you like to do?",
	"Hello! I'm here to help manage your tasks. Ask me anything!",
}

var motivationalQuotes = []string{
	"💪 \"The secret of getting ahead is getting started.\" - Mark Twain",
	"🌟 \"It always seems impossible until it's done.\" - Nelson Mandela",
	"🚀 \"Focus on being productive instead of busy.\" - Tim Ferriss",
	"✨ \"Your future is created by what you do today.\" - Robert Kiyosaki",
	"🎯 \"The key is not to prioritize what's on your schedule, but to schedule your priorities.\" - Stephen Covey",
	"🔥 \"Don't watch the clock; do what it does. Keep going.\" - Sam Levenson",
}

var productivityTips = []string{
	"📋 **Try the 2-minute rule**: If a task takes less than 2 minutes, do it right now instead of adding it to your list!",
	"🍅 **Use the Pomodoro Technique**: Work for 25 minutes, then take a 5-minute break. Every 4 cycles, take a longer 15-minute break.",
	"🎯 **Eat the frog first**: Tackle your most challenging task first thing in the morning when your energy is highest.",
	"📊 **Use the Eisenhower Matrix**: Categorize tasks by urgency and importance to decide what to do first.",
	"🧘 **Take regular breaks**: Short breaks between tasks help maintain focus and prevent burnout.",
	"📝 **Plan tomorrow tonight**: Spend 5 minutes before bed listing tomorrow's top 3 priorities.",
	"🔕 **Batch similar tasks**: Group similar work together to reduce context switching.",
	"⏰ **Set deadlines for everything**: Even self-imposed deadlines create urgency and improve completion rates.",
}

const (
	welcomeText = "Hey there! 👋 I'm your **TaskFlow Pro** assistant. I can help you create tasks, view your schedule, get productivity tips, and more!\n\n" +
		"Try asking me:\n• \"What's on my plate today?\"\n• \"Add a meeting tomorrow at 3pm\"\n• \"Give me a productivity tip\""

	helpText = "Here's what I can help you with:\n\n" +
		"📝 **Create tasks**: say \"Add meeting tomorrow at 3pm\"\n" +
		"📊 **View summary**: ask \"What's on my plate today?\"\n" +
		"⚡ **Get tips**: say \"Give me a productivity tip\"\n" +
		"💪 **Motivation**: ask \"Motivate me\" for inspiration\n" +
		"🔍 **Find tasks**: say \"Show overdue tasks\"\n" +
		"✅ **Task stats**: ask \"How am I doing?\"\n\n" +
		"Just type naturally and I'll understand! 😊"

	noTasksTodayText = "📭 You have no tasks scheduled for today. Enjoy your free time or want me to help you plan something?"
	noOverdueText    = "🎉 Great news! You have no overdue tasks. Keep up the amazing work!"
	thanksText       = "You're welcome! 😊 I'm always here to help. Anything else you need?"
	goodbyeText      = "Goodbye! 👋 Have a productive day. I'll be here whenever you need me!"

	defaultText = "I'm not sure I understand. Try saying:\n" +
		"• **\"What's on my plate today?\"**\n" +
		"• **\"Add [task name] tomorrow at 3pm\"**\n" +
		"• **\"Give me a productivity tip\"**\n" +
		"• **\"Help\"** for all commands"
)

func priorityEmoji(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "🔴"
	case model.PriorityMedium:
		return "🟡"
	case model.PriorityLow:
		return "🟢"
	}
	return "⚪"
}

func todayText(tasks []model.Task, today string) string {
	var dueToday, pending []model.Task
	for _, t := range tasks {
		if t.DueDate != today {
			continue
		}
		dueToday = append(dueToday, t)
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	if len(dueToday) == 0 {
		return noTasksTodayText
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 **Today's Overview** (%d tasks):\n\n", len(dueToday))
	fmt.Fprintf(&b, "✅ Completed: %d | ⏳ Pending: %d\n\n", len(dueToday)-len(pending), len(pending))
	if len(pending) > 0 {
		b.WriteString("**Pending tasks:**\n")
		for i, t := range pending {
			fmt.Fprintf(&b, "%d. %s %s", i+1, priorityEmoji(t.Priority), t.Title)
			if t.DueTime != "" {
				fmt.Fprintf(&b, " (%s)", t.DueTime)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func overdueText(tasks []model.Task, today string) string {
	var overdue []model.Task
	for _, t := range tasks {
		if t.IsOverdue(today) {
			overdue = append(overdue, t)
		}
	}
	if len(overdue) == 0 {
		return noOverdueText
	}

	var b strings.Builder
	fmt.Fprintf(&b, "⚠️ **Overdue Tasks** (%d):\n\n", len(overdue))
	for i, t := range overdue {
		fmt.Fprintf(&b, "%d. 🔴 %s, due %s\n", i+1, t.Title, t.DueDate)
	}
	b.WriteString("\nI'd recommend tackling the oldest ones first! 💪")
	return b.String()
}

func statsText(s task.StatsOutput) string {
	emoji, verdict := "🚀", "Let's focus on completing some tasks to boost your productivity!"
	switch {
	case s.CompletionRate >= 75:
		emoji, verdict = "🏆", "Outstanding work! You're crushing it! 🎉"
	case s.CompletionRate >= 50:
		emoji, verdict = "👍", "You're making solid progress. Keep going!"
	case s.CompletionRate >= 25:
		emoji = "💪"
	}

	return fmt.Sprintf("%s **Your Productivity Stats:**\n\n"+
		"📊 Total tasks: %d\n"+
		"✅ Completed: %d\n"+
		"📈 Completion rate: %d%%\n"+
		"🔴 High priority pending: %d\n\n%s",
		emoji, s.Total, s.Completed, s.CompletionRate, s.HighPriorityPending, verdict)
}

func createdText(d taskparse.TaskDraft) string {
	var b strings.Builder
	b.WriteString("✅ I'll create this task for you:\n\n")
	fmt.Fprintf(&b, "📝 **%s**\n", d.Title)
	fmt.Fprintf(&b, "%s Priority: %s\n", priorityEmoji(model.Priority(d.Priority)), d.Priority)
	fmt.Fprintf(&b, "📁 Category: %s\n", d.Category)
	if d.HasDueDate() {
		fmt.Fprintf(&b, "📅 Due: %s\n", d.DueDate)
	}
	if d.HasDueTime() {
		fmt.Fprintf(&b, "⏰ Time: %s\n", d.DueTime)
	}
	b.WriteString("\nTask has been added! 🎉")
	return b.String()
}

func fallbackText(title string) string {
	return fmt.Sprintf("I'm not quite sure what you mean, but would you like me to create a task?\n\n"+
		"📝 **%s**\n\n"+
		"Just say **\"add %s\"** and I'll create it for you!\n\n"+
		"Or try asking me for:\n• Today's task summary\n• Productivity tips\n• Motivation quotes\n• Help with commands",
		title, title)
}
