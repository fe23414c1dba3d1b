package mail

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	"text/template"
	"time"
)

const (
	TemplateWelcome      = "welcome"
	TemplateAgentInstall = "agent_install"

	WelcomeSubject        = "Welcome to Nexus Sentinel - Your Username Inside!"
	DefaultAgentSubject   = "NexusSentinel Agent Installation - Action Required"
	defaultAgentIntensity = "medium"
	agentTypeLinux        = "Linux"
	agentTypeWindows      = "Windows"
)

// WelcomeData holds the values rendered into the signup welcome email
type WelcomeData struct {
	Email       string
	Username    string
	CompanyName string
	LoginURL    string
}

// AgentInstallData holds the values rendered into the agent installation email
type AgentInstallData struct {
	Name            string
	OperatingSystem string
	DownloadLink    string
	Intensity       string
}

var (
	welcomeHTML = htmltemplate.Must(htmltemplate.New("welcome").Parse(welcomeHTMLTemplate))
	welcomeText = template.Must(template.New("welcomeText").Parse(welcomeTextTemplate))
	agentHTML   = htmltemplate.Must(htmltemplate.New("agent").Parse(agentHTMLTemplate))
	agentText   = template.Must(template.New("agentText").Parse(agentTextTemplate))
)

// AgentType returns the agent build matching an operating system description.
func AgentType(operatingSystem string) string {
	if strings.Contains(strings.ToLower(operatingSystem), "linux") {
		return agentTypeLinux
	}
	return agentTypeWindows
}

// WelcomeEmail renders the message carrying the generated login handle.
func WelcomeEmail(data WelcomeData) (*Message, error) {
	tmplData := struct {
		WelcomeData
		Year int
	}{
		WelcomeData: data,
		Year:        time.Now().Year(),
	}

	var htmlBuf, textBuf bytes.Buffer
	if err := welcomeHTML.Execute(&htmlBuf, tmplData); err != nil {
		return nil, fmt.Errorf("html template: %w", err)
	}
	if err := welcomeText.Execute(&textBuf, tmplData); err != nil {
		return nil, fmt.Errorf("text template: %w", err)
	}

	return &Message{
		To:       data.Email,
		Subject:  WelcomeSubject,
		HTML:     htmlBuf.String(),
		Text:     textBuf.String(),
		Template: TemplateWelcome,
	}, nil
}

// AgentInstallEmail renders installation instructions for an approved device.
// An empty subject falls back to DefaultAgentSubject.
func AgentInstallEmail(to, subject string, data AgentInstallData) (*Message, error) {
	if strings.TrimSpace(subject) == "" {
		subject = DefaultAgentSubject
	}
	intensity := strings.TrimSpace(data.Intensity)
	if intensity == "" {
		intensity = defaultAgentIntensity
	}

	tmplData := struct {
		AgentInstallData
		AgentType string
		Intensity string
		Year      int
	}{
		AgentInstallData: data,
		AgentType:        AgentType(data.OperatingSystem),
		Intensity:        strings.ToUpper(intensity),
		Year:             time.Now().Year(),
	}

	var htmlBuf, textBuf bytes.Buffer
	if err := agentHTML.Execute(&htmlBuf, tmplData); err != nil {
		return nil, fmt.Errorf("html template: %w", err)
	}
	if err := agentText.Execute(&textBuf, tmplData); err != nil {
		return nil, fmt.Errorf("text template: %w", err)
	}

	return &Message{
		To:       to,
		Subject:  subject,
		HTML:     htmlBuf.String(),
		Text:     textBuf.String(),
		Template: TemplateAgentInstall,
	}, nil
}

const welcomeHTMLTemplate = `<div style="font-family: Arial, sans-serif; background-color:#1a1a2e; color:#e0e0e0; padding: 20px; max-width:600px; margin:auto; border-radius:8px;">
  <h2 style="color:#7f5af0; text-align:center;">Welcome to <span style="color:#ffffff;">Nexus Sentinel</span>!</h2>
  <p style="font-size:16px; line-height:1.5;">Hi {{if .CompanyName}}{{.CompanyName}} team{{else}}there{{end}},</p>
  <p style="font-size:16px; line-height:1.5;">
    Thank you for registering as an administrator on Nexus Sentinel, your AI-powered EDR platform designed to keep your endpoints secure.
  </p>
  <p style="font-size:16px; line-height:1.5;">Your unique username has been generated for you:</p>
  <p style="font-size:20px; font-weight:bold; color:#7f5af0; background:#2e2e62; padding: 12px; border-radius: 6px; text-align: center;">{{.Username}}</p>
  <p style="font-size:16px; line-height:1.5;">
    Please use this username along with the password you created during signup to log in to your admin dashboard.
  </p>
  <p style="font-size:16px; line-height:1.5;">
    <a href="{{.LoginURL}}" target="_blank" style="display:inline-block; padding:10px 20px; background:#7f5af0; color:#fff; border-radius: 5px; text-decoration:none; margin-top:10px;">Go to Login</a>
  </p>
  <hr style="border:none; border-top:1px solid #444; margin: 30px 0;" />
  <p style="font-size:12px; color:#999999; text-align:center;">
    If you did not request this email, please ignore it.<br />
    &copy; {{.Year}} Nexus Sentinel. All rights reserved.
  </p>
</div>
`

const welcomeTextTemplate = `Welcome to Nexus Sentinel!

Hi {{if .CompanyName}}{{.CompanyName}} team{{else}}there{{end}},

Thank you for registering as an administrator on Nexus Sentinel, your AI-powered EDR platform designed to keep your endpoints secure.

Your unique username: {{.Username}}

Use this username with the password you created during signup to log in:
{{.LoginURL}}

If you did not request this email, please ignore it.
(c) {{.Year}} Nexus Sentinel. All rights reserved.
`

const agentHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 20px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
    .button { display: inline-block; background: #667eea; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; margin: 20px 0; }
    .footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
    .highlight { background: #e3f2fd; padding: 15px; border-left: 4px solid #2196f3; margin: 15px 0; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>NexusSentinel Agent Installation</h1>
      <p>Secure Your Endpoint Today</p>
    </div>
    <div class="content">
      <h2>Hello {{.Name}},</h2>
      <p>Your endpoint has been approved for NexusSentinel monitoring. To complete the setup, please install the NexusSentinel agent on your device.</p>
      <div class="highlight">
        <strong>Your System Information:</strong><br>
        Operating System: {{.OperatingSystem}}<br>
        Agent Type: {{.AgentType}}<br>
        Status: Approved
      </div>
      <h3>Installation Instructions:</h3>
      <ol>
        <li>Click the download button below to access the {{.AgentType}} agent</li>
        <li>Follow the installation instructions on the download page</li>
        <li>The agent will automatically connect to NexusSentinel</li>
        <li>The agent is configured for <strong>{{.Intensity}}</strong> intensity scanning</li>
      </ol>
      <div style="text-align: center; margin: 30px 0;">
        <a href="{{.DownloadLink}}" class="button" style="color: white;">Download {{.AgentType}} Agent</a>
      </div>
      <div class="highlight">
        <strong>Security Note:</strong><br>
        This agent will monitor your endpoint for security threats and ensure compliance with your organization's security policies. The agent requires administrator or root privileges to install.
      </div>
      <h3>Need Help?</h3>
      <p>If you encounter any issues during installation, contact your system administrator or check the installation guide at the download page.</p>
      <p>Best regards,<br><strong>NexusSentinel Security Team</strong></p>
    </div>
    <div class="footer">
      <p>This is an automated message from NexusSentinel. Please do not reply to this email.</p>
      <p>&copy; {{.Year}} NexusSentinel. All rights reserved.</p>
    </div>
  </div>
</body>
</html>
`

const agentTextTemplate = `Hello {{.Name}},

Your endpoint has been approved for NexusSentinel monitoring. To complete the setup, please install the NexusSentinel agent on your device.

System Information:
- Operating System: {{.OperatingSystem}}
- Agent Type: {{.AgentType}}
- Status: Approved

Installation Instructions:
1. Visit: {{.DownloadLink}}
2. Download the {{.AgentType}} agent
3. Follow the installation instructions
4. The agent will automatically connect to NexusSentinel ({{.Intensity}} intensity scanning)

Security Note:
This agent will monitor your endpoint for security threats and ensure compliance with your organization's security policies.

Need help? Contact your system administrator.

Best regards,
NexusSentinel Security Team
`
