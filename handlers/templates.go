package handlers

import "html/template"

var pages = template.Must(template.New("pages").Parse(`
{{define "head"}}
<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Taskboard</title>
<style>
body { font-family: sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; }
.flash-success { color: #166534; }
.flash-error { color: #991b1b; }
table { border-collapse: collapse; width: 100%; }
td, th { border-bottom: 1px solid #ddd; padding: 0.4rem; text-align: left; }
form.inline { display: inline; }
nav a { margin-right: 1rem; }
.stats span { margin-right: 1.5rem; }
</style>
</head>
<body>
{{range .Notices}}<p class="flash-{{.Level}}">{{.Message}}</p>{{end}}
{{end}}

{{define "login"}}
{{template "head" .}}
<h1>Sign in</h1>
{{if .Error}}<p class="flash-error">{{.Error}}</p>{{end}}
<form method="post" action="/login">
  <p><label>Email <input type="email" name="email" value="{{.Email}}"></label></p>
  <p><label>Password <input type="password" name="password"></label></p>
  <p><button type="submit">Login</button> <a href="/signup">Create an account</a></p>
</form>
</body></html>
{{end}}

{{define "signup"}}
{{template "head" .}}
<h1>Create account</h1>
{{if .Error}}<p class="flash-error">{{.Error}}</p>{{end}}
<form method="post" action="/signup">
  <p><label>Name <input type="text" name="name" value="{{.Name}}"></label></p>
  <p><label>Email <input type="email" name="email" value="{{.Email}}"></label></p>
  <p><label>Password <input type="password" name="password"></label></p>
  <p><button type="submit">Sign up</button> <a href="/login">Back to login</a></p>
</form>
</body></html>
{{end}}

{{define "dashboard"}}
{{template "head" .}}
<nav><a href="/dashboard">Dashboard</a><a href="/profile">Profile</a>
<form class="inline" method="post" action="/logout"><button type="submit">Logout</button></form></nav>
<h1>Tasks ({{.Count}})</h1>
<p class="stats">
  <span>Pending: {{.Stats.Pending}}</span>
  <span>In progress: {{.Stats.InProgress}}</span>
  <span>Completed: {{.Stats.Completed}}</span>
  <span>High priority: {{.Stats.HighPriority}}</span>
</p>
<form method="post" action="/filters">
  <input type="text" name="search" placeholder="Search" value="{{.Search}}">
  <select name="status">
    {{range .StatusOptions}}<option value="{{.}}" {{if eq . $.Status}}selected{{end}}>{{.}}</option>{{end}}
  </select>
  <select name="priority">
    {{range .PriorityOptions}}<option value="{{.}}" {{if eq . $.Priority}}selected{{end}}>{{.}}</option>{{end}}
  </select>
  <button type="submit">Apply</button>
</form>
<form method="post" action="/filters/reset"><button type="submit">Reset filters</button></form>
<table>
<tr><th>Title</th><th>Status</th><th>Priority</th><th>Due</th><th></th></tr>
{{range .Tasks}}
<tr>
  <td>{{.Title}}</td><td>{{.Status}}</td><td>{{.Priority}}</td><td>{{.DueDate}}</td>
  <td>
    <form class="inline" method="post" action="/tasks/{{.ID}}/update">
      <input type="hidden" name="status" value="completed"><button type="submit">Complete</button>
    </form>
    <form class="inline" method="post" action="/tasks/{{.ID}}/delete"><button type="submit">Delete</button></form>
  </td>
</tr>
{{end}}
</table>
<h2>New task</h2>
<form method="post" action="/tasks">
  <p><input type="text" name="title" placeholder="Title"></p>
  <p><input type="text" name="description" placeholder="Description"></p>
  <p>
    <select name="priority"><option value="">priority</option><option>low</option><option>medium</option><option>high</option></select>
    <input type="date" name="dueDate">
    <input type="text" name="tags" placeholder="tags, comma separated">
  </p>
  <p><button type="submit">Create</button></p>
</form>
</body></html>
{{end}}

{{define "profile"}}
{{template "head" .}}
<nav><a href="/dashboard">Dashboard</a><a href="/profile">Profile</a></nav>
<h1>Profile</h1>
<form method="post" action="/profile">
  <p><label>Name <input type="text" name="name" value="{{.User.Name}}"></label></p>
  <p><label>Bio <input type="text" name="bio" value="{{.User.Bio}}"></label></p>
  <p><label>Avatar URL <input type="text" name="avatar" value="{{.User.Avatar}}"></label></p>
  <p><button type="submit">Save</button></p>
</form>
<h2>Change password</h2>
<form method="post" action="/profile/password">
  <p><label>Current <input type="password" name="current"></label></p>
  <p><label>New <input type="password" name="new"></label></p>
  <p><label>Confirm <input type="password" name="confirm"></label></p>
  <p><button type="submit">Update password</button></p>
</form>
<h2>Danger zone</h2>
<form method="post" action="/account/delete"><button type="submit">Delete account</button></form>
</body></html>
{{end}}
`))
