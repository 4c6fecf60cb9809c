package report

const tpl = `
<!DOCTYPE html>
<html>
 <head>
  <meta charset="UTF-8">
  <title>Netgroup Report</title>
 </head>
 <body>
  <h1>Netgroup Report</h1>
  <h2>Task Information:</h2>
  {{ range .TaskInfoItems }}
  <b>{{ index . 0 }} : </b>{{ index . 1 }}<br>
  {{ end }}
  <h2>Report Summary:</h2>
  <table>
   <tr>
    <td>Nodes</td>
    <td>{{ .Summary.NodeCount }}</td>
   </tr>
   <tr>
    <td>Declared Edges</td>
    <td>{{ .Summary.EdgeCount }}</td>
   </tr>
   <tr>
    <td>Components</td>
    <td>{{ .Summary.ComponentCount }}</td>
   </tr>
   <tr>
    <td>Component Size of Node {{ .Summary.Node }}</td>
    <td>{{ .Summary.NodeComponentSize }}</td>
   </tr>
  </table>
  <h2>Components Sorted by size:</h2>
  <table>
   <tr>
    {{ range .Components.Header }}
    <th>{{ . }}</th>
    {{ end }}
   </tr>
   {{ range .Components.Data }}
   <tr>
    {{ range . }}
    <td>{{ . }}</td>
    {{ end }}
   </tr>
   {{ end }}
  </table>
 </body>
</html>`
