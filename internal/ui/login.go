package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginModel holds the credential form.  Focus alternates between the
// two inputs with tab; enter on either submits.
type loginModel struct {
	username textinput.Model
	password textinput.Model
	focus    int
}

func newLoginModel() loginModel {
	user := textinput.New()
	user.Placeholder = "usuario"
	user.CharLimit = 64
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "contraseña"
	pass.CharLimit = 64
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	return loginModel{username: user, password: pass}
}

func (a *App) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		a.login.focus = 1 - a.login.focus
		if a.login.focus == 0 {
			a.login.username.Focus()
			a.login.password.Blur()
		} else {
			a.login.username.Blur()
			a.login.password.Focus()
		}
		return a, nil
	case "enter":
		user := strings.TrimSpace(a.login.username.Value())
		pass := a.login.password.Value()
		if user == "" || pass == "" {
			a.setError("Ingrese usuario y contraseña")
			return a, nil
		}
		a.busy = true
		return a, a.loginCmd(user, pass)
	}

	var cmd tea.Cmd
	if a.login.focus == 0 {
		a.login.username, cmd = a.login.username.Update(msg)
	} else {
		a.login.password, cmd = a.login.password.Update(msg)
	}
	return a, cmd
}

func (a *App) viewLogin() string {
	form := "Usuario\n" + a.login.username.View() + "\n\n" +
		"Contraseña\n" + a.login.password.View()
	return "\n" + boxStyle.Render(form) + "\n\n" +
		helpStyle.Render("tab cambiar campo · enter ingresar · ctrl+c salir")
}
